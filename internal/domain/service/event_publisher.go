package service

import (
	"context"
)

// EventPublisher defines the interface for publishing analytics events to a message queue
type EventPublisher interface {
	// PublishAnalyticsEvent publishes a single event and waits for the transport to accept it
	PublishAnalyticsEvent(ctx context.Context, event *AnalyticsEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

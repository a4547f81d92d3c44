// Package pubsub publishes analytics events to the configured message transport.
package pubsub

import (
	"context"
	"log/slog"

	"portfolio/config"
	"portfolio/internal/domain/constants"
	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no transport is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAnalyticsEvent(_ context.Context, event *service.AnalyticsEvent) error {
	p.logger.Debug("Analytics transport disabled, dropping event", slog.String("event", event.Name))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the EventPublisher of the configured analytics provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Analytics
	if cfg == nil {
		cfg = &config.AnalyticsConfig{}
	}
	if err := validateAnalyticsConfig(cfg); err != nil {
		return nil, err
	}

	logger := params.Logger.With(slog.String("analytics_provider", cfg.Provider))
	var (
		publisher service.EventPublisher
		err       error
	)
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)
	case constants.PubSubProviderGoogle:
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
	default:
		logger.Info("Analytics transport not configured, events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	logger.Info("Analytics publisher ready")
	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func validateAnalyticsConfig(cfg *config.AnalyticsConfig) error {
	switch cfg.Provider {
	case "", constants.PubSubProviderNoop:
		return nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown analytics provider: %s", cfg.Provider)
	}

	return nil
}

package pubsub

import (
	"context"
	"log/slog"

	"portfolio/config"
	"portfolio/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher sends analytics events to a Google Cloud Pub/Sub topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the configured topic and fails fast when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.AnalyticsConfig, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + cfg.ProjectID + "/topics/" + cfg.TopicID
	if _, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "get topic %s", cfg.TopicID)
	}

	publisher := client.Publisher(topic)
	publisher.EnableMessageOrdering = true
	// Events are small and bursty around sign in; flush them quickly instead of batching.
	publisher.PublishSettings.CountThreshold = 10

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger.With(slog.String("topic", cfg.TopicID)),
	}, nil
}

func (p *googlePubSubPublisher) PublishAnalyticsEvent(ctx context.Context, event *service.AnalyticsEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		if msg.orderingKey != "" {
			// A failed ordered publish pauses its key until resumed.
			p.publisher.ResumePublish(msg.orderingKey)
		}

		return errors.Wrapf(err, "publish analytics event %s", event.Name)
	}

	p.logger.Debug("Analytics event published",
		slog.String("event", event.Name),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending events and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

package pubsub

import (
	"context"
	"testing"

	"portfolio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, analytics *config.AnalyticsConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Analytics: analytics},
		Logger: discardLogger(),
	}
}

func TestNewEventPublisher_Noop(t *testing.T) {
	for _, cfg := range []*config.AnalyticsConfig{nil, {}, {Provider: "noop"}} {
		publisher, err := NewEventPublisher(newParams(t, cfg))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
	}
}

func TestNewEventPublisher_Local(t *testing.T) {
	publisher, err := NewEventPublisher(newParams(t, &config.AnalyticsConfig{
		Provider:      "local",
		LocalEndpoint: "http://localhost:8085/events",
	}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.AnalyticsConfig
	}{
		{"local without endpoint", &config.AnalyticsConfig{Provider: "local"}},
		{"google without project", &config.AnalyticsConfig{Provider: "google", TopicID: "t"}},
		{"google without topic", &config.AnalyticsConfig{Provider: "google", ProjectID: "p"}},
		{"unknown provider", &config.AnalyticsConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newParams(t, tt.cfg))
			assert.Error(t, err)
		})
	}
}

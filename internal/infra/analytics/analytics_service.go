// Package analytics records analytics events on top of the configured event publisher.
package analytics

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/lifecycle"
	"portfolio/internal/domain/service"
	"portfolio/internal/domain/session"

	"go.uber.org/fx"
)

// ServiceParams holds dependencies for the analytics service, injected by Fx.
type ServiceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// analyticsService publishes events in the background. Failures are logged and never reach the caller.
type analyticsService struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time

	users    sync.Map // session ID -> user ID
	inflight sync.WaitGroup
}

// NewAnalyticsService creates the analytics service and drains in-flight events on shutdown.
func NewAnalyticsService(params ServiceParams) service.AnalyticsService {
	svc := newAnalyticsService(params.Publisher, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			svc.wait(ctx)

			return nil
		},
	})

	return svc
}

func newAnalyticsService(publisher service.EventPublisher, logger *slog.Logger) *analyticsService {
	return &analyticsService{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// LogEvent publishes an event without blocking the caller.
func (s *analyticsService) LogEvent(ctx context.Context, name string, params map[string]any) {
	event := &service.AnalyticsEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       name,
		Params:     maps.Clone(params),
		OccurredAt: s.now().UnixMilli(),
	}
	if st := session.FromContext(ctx); st != nil {
		event.SessionID = st.ID
		if userID, ok := s.users.Load(st.ID); ok {
			event.UserID, _ = userID.(string)
		}
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	publishCtx := context.WithoutCancel(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		publishCtx, cancel := context.WithTimeout(publishCtx, lifecycle.DefaultTimeout)
		defer cancel()

		if err := s.publisher.PublishAnalyticsEvent(publishCtx, event); err != nil {
			logger.Warn("Failed to publish analytics event",
				slog.String("event", event.Name),
				slog.Any("error", err),
			)
		}
	}()
}

// SetUserID attributes subsequent events of the session in ctx to userID.
func (s *analyticsService) SetUserID(ctx context.Context, userID *string) {
	st := session.FromContext(ctx)
	if st == nil {
		return
	}

	if userID == nil || *userID == "" {
		s.users.Delete(st.ID)

		return
	}
	s.users.Store(st.ID, *userID)
}

// wait blocks until in-flight events are published or ctx is done.
func (s *analyticsService) wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("Analytics events dropped on shutdown", slog.Any("error", ctx.Err()))
	}
}

package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	"portfolio/internal/domain/session"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. It binds every new session state to
// the auth state stream; the bound handler is the single writer of the state's User cell.
type sessionService struct {
	registry  *session.Registry
	authUC    usecase.AuthUsecase
	analytics service.AnalyticsService
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	registry *session.Registry,
	authUC usecase.AuthUsecase,
	analytics service.AnalyticsService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		registry:  registry,
		authUC:    authUC,
		analytics: analytics,
		logger:    logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Open returns the session state of id, creating and binding it on first use.
func (srv *sessionService) Open(ctx context.Context, id string) (*session.State, error) {
	st, err := srv.registry.GetOrCreate(id, func(st *session.State) error {
		return srv.bind(ctx, st)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session")
	}

	return st, nil
}

// Close tears down the session state of id.
func (srv *sessionService) Close(id string) {
	srv.registry.Remove(id)
}

// Sweep tears down the sessions idle for longer than idle.
func (srv *sessionService) Sweep(idle time.Duration) int {
	closed := srv.registry.Sweep(idle)
	if closed > 0 {
		srv.logger.Debug("Idle sessions closed", slog.Int("count", closed))
	}

	return closed
}

func (srv *sessionService) bind(ctx context.Context, st *session.State) error {
	// The binding outlives the request that created the session.
	stateCtx := session.WithState(context.WithoutCancel(ctx), st)

	sub, err := srv.authUC.SubscribeAuthState(stateCtx, func(user *entity.AuthUser) {
		st.User.Set(user)
		if user == nil {
			st.Settings.Reset()
			srv.analytics.SetUserID(stateCtx, nil)

			return
		}
		userID := user.ID
		srv.analytics.SetUserID(stateCtx, &userID)
	})
	if err != nil {
		return err
	}
	st.OnClose(sub.Unsubscribe)
	st.OnClose(func() { srv.analytics.SetUserID(stateCtx, nil) })

	srv.log(ctx).Debug("Session bound to auth state", slog.String("session_id", st.ID))

	return nil
}

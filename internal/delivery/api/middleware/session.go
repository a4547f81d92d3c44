package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/session"
	"portfolio/internal/errors"
	"portfolio/internal/usecase"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	sessionKeyID = "sid"

	maxSweepInterval = time.Minute
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionMiddleware ties the session cookie to the per-session state.
type SessionMiddleware struct {
	manager   *scs.SessionManager
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
	idle      time.Duration
	stop      chan struct{}
	done      chan struct{}
}

// NewSessionManager creates the cookie session manager from the session config.
func NewSessionManager(cfg *config.SessionConfig) *scs.SessionManager {
	manager := scs.New()
	manager.Lifetime = cfg.Lifetime
	if cfg.IdleTimeout > 0 {
		manager.IdleTimeout = cfg.IdleTimeout
	}
	manager.Cookie.Name = cfg.CookieName
	manager.Cookie.HttpOnly = true
	manager.Cookie.Secure = cfg.CookieSecure
	manager.Cookie.SameSite = http.SameSiteLaxMode
	manager.Cookie.Path = "/"

	return manager
}

// NewSessionMiddleware creates the session middleware and schedules the sweeping of idle
// session states for the application lifetime.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	m := newSessionMiddleware(NewSessionManager(params.Config.Session), params.SessionUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go m.sweep()

			return nil
		},
		OnStop: m.shutdown,
	})

	return m
}

func newSessionMiddleware(manager *scs.SessionManager, sessionUC usecase.SessionUsecase, logger *slog.Logger) *SessionMiddleware {
	idle := manager.IdleTimeout
	if idle <= 0 {
		idle = manager.Lifetime
	}

	return &SessionMiddleware{
		manager:   manager,
		sessionUC: sessionUC,
		logger:    logger,
		idle:      idle,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// LoadAndSave loads the session cookie data and commits it on response.
func (m *SessionMiddleware) LoadAndSave(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(m.manager.LoadAndSave)(next)
}

// Attach opens the state of the request's session and stores it in the request context. It
// must run after LoadAndSave.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id := m.manager.GetString(ctx, sessionKeyID)
		if id == "" {
			id = uuid.NewString()
			m.manager.Put(ctx, sessionKeyID, id)
		}

		st, err := m.sessionUC.Open(ctx, id)
		if err != nil {
			return errors.Wrap(err, "open session")
		}
		ctx = session.WithState(ctx, st)
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("session_id", st.ID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// Renew issues a new cookie token for the current session, keeping its state.
func (m *SessionMiddleware) Renew(c echo.Context) error {
	return errors.WithStack(m.manager.RenewToken(c.Request().Context()))
}

// End tears down the state of the current session and destroys its cookie.
func (m *SessionMiddleware) End(c echo.Context) error {
	ctx := c.Request().Context()
	if st := session.FromContext(ctx); st != nil {
		m.sessionUC.Close(st.ID)
	}

	return errors.WithStack(m.manager.Destroy(ctx))
}

func (m *SessionMiddleware) sweep() {
	defer close(m.done)

	interval := min(m.idle/2, maxSweepInterval)
	if interval <= 0 {
		interval = maxSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			if closed := m.sessionUC.Sweep(m.idle); closed > 0 {
				m.logger.Debug("Swept idle sessions", slog.Int("count", closed))
			}
		}
	}
}

func (m *SessionMiddleware) shutdown(ctx context.Context) error {
	close(m.stop)

	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Session sweeper did not stop in time")

		return errors.WithStack(ctx.Err())
	}
}

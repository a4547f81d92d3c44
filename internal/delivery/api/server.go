package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"portfolio/config"
	"portfolio/internal/delivery"
	apimiddleware "portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/router"
	"portfolio/internal/delivery/api/validator"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/delivery/middleware"
	"portfolio/internal/domain/lifecycle"
	"portfolio/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Validator    *validator.CustomValidator
	RouterParams router.RouterParams
}

// NewServer builds the portfolio API on echo and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   echo.New(),
	}
	srv.configure(params.Validator)
	srv.registerMiddleware()
	router.NewRouter(params.RouterParams).RegisterRoutes(srv.echo)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) configure(v echo.Validator) {
	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = s.cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = s.cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = s.cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = s.cfg.HTTP.Timeouts.IdleTimeout
	e.Validator = v
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(s.logger).HandleHTTPError
}

// registerMiddleware installs the global chain. Order matters: request IDs must exist
// before anything logs, and panics are recovered inside the logger so they are recorded.
func (s *apiServer) registerMiddleware() {
	origins := s.cfg.HTTP.AllowOrigins

	s.echo.Use(
		middleware.NewRequestIDMiddleware(s.logger).Process,
		middleware.NewLoggerMiddleware(s.logger, s.cfg).Handle,
		echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
			DisableStackAll:   true,
			DisablePrintStack: true,
			LogErrorFunc:      s.logPanic,
		}),
		echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
			XSSProtection:      "0",
			ContentTypeNosniff: "nosniff",
			XFrameOptions:      "DENY",
			ReferrerPolicy:     "strict-origin-when-cross-origin",
		}),
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:     origins,
			AllowCredentials: len(origins) > 0,
		}),
		echomiddleware.BodyLimit(s.cfg.HTTP.MaxRequestBodySize),
	)
}

func (s *apiServer) logPanic(c echo.Context, err error, stack []byte) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), s.logger).Error("Recovered from panic",
		slog.Any("error", err),
		slog.String("stack", string(stack)),
	)

	return errors.Recovered(err)
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.echo.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/result"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	authSvc service.AuthService
	logger  *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(authSvc service.AuthService, logger *slog.Logger) usecase.AuthUsecase {
	return &authService{
		authSvc: authSvc,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn signs in with an email and password.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) usecase.AuthUserResult {
	srv.log(ctx).Debug("Signing in with password")

	return result.Execute(ctx, func(ctx context.Context) (*entity.AuthUser, error) {
		return srv.authSvc.SignInWithPassword(ctx, input.Email, input.Password)
	}, domainerrors.MapAuthError)
}

// SignInWithProvider signs in with a federated provider ID token.
func (srv *authService) SignInWithProvider(ctx context.Context, input usecase.SignInWithProviderInput) usecase.AuthUserResult {
	srv.log(ctx).Debug("Signing in with provider", slog.String("method", input.Method.String()))

	return result.Execute(ctx, func(ctx context.Context) (*entity.AuthUser, error) {
		return srv.authSvc.SignInWithProvider(ctx, input.Method, input.IDToken)
	}, domainerrors.MapAuthError)
}

// SignUp creates an account.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) usecase.AuthUserResult {
	srv.log(ctx).Debug("Signing up")

	return result.Execute(ctx, func(ctx context.Context) (*entity.AuthUser, error) {
		return srv.authSvc.SignUp(ctx, input.Email, input.Password, input.DisplayName)
	}, domainerrors.MapAuthError)
}

// ResetPassword requests a password reset email.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) usecase.AuthVoidResult {
	return result.ExecuteVoid(ctx, func(ctx context.Context) error {
		return srv.authSvc.SendPasswordReset(ctx, input.Email)
	}, domainerrors.MapAuthError)
}

// SignOut ends the sign-in of the current session.
func (srv *authService) SignOut(ctx context.Context) usecase.AuthVoidResult {
	return result.ExecuteVoid(ctx, srv.authSvc.SignOut, domainerrors.MapAuthError)
}

// SubscribeAuthState registers handler for auth state changes.
func (srv *authService) SubscribeAuthState(ctx context.Context, handler service.AuthStateHandler) (usecase.Subscription, error) {
	unsubscribe, err := srv.authSvc.OnAuthStateChanged(ctx, handler)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to auth state")
	}

	return &authSubscription{unsubscribe: unsubscribe}, nil
}

type authSubscription struct {
	once        sync.Once
	unsubscribe func()
}

func (s *authSubscription) Unsubscribe() {
	s.once.Do(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
	})
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	authSvc service.AuthService
	logger  *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(authSvc service.AuthService, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		authSvc: authSvc,
		logger:  logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile changes the display name of the signed-in user.
func (srv *profileService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) usecase.AuthVoidResult {
	srv.log(ctx).Debug("Updating profile")

	return srv.authSvc.UpdateDisplayName(ctx, input.DisplayName)
}

// UpdatePassword changes the password of the signed-in user.
func (srv *profileService) UpdatePassword(ctx context.Context, input usecase.UpdatePasswordInput) usecase.AuthVoidResult {
	srv.log(ctx).Debug("Updating password")

	return srv.authSvc.UpdatePassword(ctx, input.NewPassword)
}

// Reauthenticate proves the identity of the signed-in user again.
func (srv *profileService) Reauthenticate(ctx context.Context, input usecase.ReauthenticateInput) usecase.AuthVoidResult {
	srv.log(ctx).Debug("Reauthenticating", slog.String("method", input.Method.String()))

	if input.Method == entity.AuthMethodEmail {
		return srv.authSvc.ReauthenticateWithPassword(ctx, input.Password)
	}

	return srv.authSvc.ReauthenticateWithProvider(ctx, input.Method, input.IDToken)
}

// DeleteAccount removes the account of the signed-in user.
func (srv *profileService) DeleteAccount(ctx context.Context) usecase.AuthVoidResult {
	srv.log(ctx).Info("Deleting account")

	return srv.authSvc.DeleteAccount(ctx)
}

package impl

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/result"
	"portfolio/internal/usecase"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

// LoadUserSettings returns the stored settings. Anonymous callers get a successful nil
// without touching the repository.
func (srv *settingsService) LoadUserSettings(ctx context.Context, input usecase.LoadUserSettingsInput) usecase.SettingsResult {
	if input.UserID == nil || *input.UserID == "" {
		return result.Ok[*entity.UserSettings, domainerrors.SettingsErrorCode](nil)
	}
	userID := *input.UserID

	return result.Execute(ctx, func(ctx context.Context) (*entity.UserSettings, error) {
		return srv.settingsRepo.Get(ctx, userID)
	}, domainerrors.MapSettingsError)
}

// SaveUserSettings replaces the stored settings of the user.
func (srv *settingsService) SaveUserSettings(ctx context.Context, input usecase.SaveUserSettingsInput) usecase.SettingsVoidResult {
	return result.ExecuteVoid(ctx, func(ctx context.Context) error {
		return srv.settingsRepo.Set(ctx, input.UserID, input.Settings)
	}, domainerrors.MapSettingsError)
}

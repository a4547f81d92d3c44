package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/result"
)

// SettingsResult is the outcome of loading settings. A success without settings carries nil.
type SettingsResult = result.Result[*entity.UserSettings, domainerrors.SettingsErrorCode]

// SettingsVoidResult is the outcome of saving settings.
type SettingsVoidResult = result.Result[result.Empty, domainerrors.SettingsErrorCode]

// LoadUserSettingsInput represents the input for loading settings. A nil or empty UserID
// denotes an anonymous caller.
type LoadUserSettingsInput struct {
	UserID *string
}

// SaveUserSettingsInput represents the input for saving settings
type SaveUserSettingsInput struct {
	UserID   string
	Settings entity.UserSettings
}

// SettingsUsecase defines the interface for user settings use cases
type SettingsUsecase interface {
	LoadUserSettings(ctx context.Context, input LoadUserSettingsInput) SettingsResult
	SaveUserSettings(ctx context.Context, input SaveUserSettingsInput) SettingsVoidResult
}

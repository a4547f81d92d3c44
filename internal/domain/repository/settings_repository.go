package repository

import (
	"context"

	"portfolio/internal/domain/entity"
)

// SettingsRepository defines the interface for per-user settings storage.
type SettingsRepository interface {
	// Get returns the stored settings, or nil when the user has none.
	Get(ctx context.Context, userID string) (*entity.UserSettings, error)

	// Set replaces the stored settings of the user.
	Set(ctx context.Context, userID string, settings entity.UserSettings) error
}

package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get returns the stored settings, or nil when the user has none.
func (repo *settingsRepository) Get(ctx context.Context, userID string) (*entity.UserSettings, error) {
	var settingsM model.UserSettingsModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get user settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// Set replaces the stored settings of the user.
func (repo *settingsRepository) Set(ctx context.Context, userID string, settings entity.UserSettings) error {
	settingsM := fromSettingsDomain(userID, settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"locale", "theme", "updated_at"}),
		}).
		Create(settingsM).Error; err != nil {
		return errors.Wrap(err, "failed to save user settings")
	}

	return nil
}

func fromSettingsDomain(userID string, settings entity.UserSettings) *model.UserSettingsModel {
	settingsM := &model.UserSettingsModel{
		UserID: userID,
		Locale: settings.Locale,
	}
	if settings.Theme != nil {
		theme := string(*settings.Theme)
		settingsM.Theme = &theme
	}

	return settingsM
}

func toSettingsDomain(settingsM *model.UserSettingsModel) *entity.UserSettings {
	settings := &entity.UserSettings{Locale: settingsM.Locale}
	if settingsM.Theme != nil {
		theme := entity.Theme(*settingsM.Theme)
		settings.Theme = &theme
	}

	return settings
}

package firestore

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"

	fsLib "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// settingsRepository implements the repository.SettingsRepository interface.
// Each user's settings live in one document keyed by the user ID.
type settingsRepository struct {
	client *fsLib.Client
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(client *fsLib.Client) repository.SettingsRepository {
	return &settingsRepository{
		client: client,
	}
}

// Get returns the stored settings, or nil when the user has none.
func (repo *settingsRepository) Get(ctx context.Context, userID string) (*entity.UserSettings, error) {
	snap, err := repo.client.Collection(settingsCollection).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user settings")
	}

	var doc settingsDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user settings")
	}

	return doc.toDomain(), nil
}

// Set replaces the stored settings of the user.
func (repo *settingsRepository) Set(ctx context.Context, userID string, settings entity.UserSettings) error {
	if _, err := repo.client.Collection(settingsCollection).Doc(userID).Set(ctx, fromSettingsDomain(settings)); err != nil {
		return errors.Wrap(err, "failed to save user settings")
	}

	return nil
}

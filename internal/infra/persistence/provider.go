// Package persistence selects the storage backend of books and user settings.
package persistence

import (
	"context"
	"log/slog"

	"portfolio/config"
	"portfolio/internal/domain/constants"
	"portfolio/internal/domain/repository"
	firebaseapp "portfolio/internal/infra/firebase"
	"portfolio/internal/infra/persistence/firestore"
	"portfolio/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the repositories, injected by Fx.
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebaseapp.App
}

// Repositories are the storage-backed repositories provided to Fx.
type Repositories struct {
	fx.Out

	Books    repository.BookRepository
	Settings repository.SettingsRepository
}

// NewRepositories creates the repositories of the configured storage provider.
func NewRepositories(params RepositoryParams) (Repositories, error) {
	provider := params.Config.Storage.Provider

	switch provider {
	case constants.StorageProviderFirestore:
		client, err := params.App.Firestore(params.Ctx)
		if err != nil {
			return Repositories{}, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		params.Logger.Info("Using Firestore storage")

		return Repositories{
			Books:    firestore.NewBookRepository(client),
			Settings: firestore.NewSettingsRepository(client),
		}, nil

	case constants.StorageProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL storage")

		return Repositories{
			Books:    postgres.NewBookRepository(db),
			Settings: postgres.NewSettingsRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage provider: %s", provider)
	}
}

// Package firebase bootstraps the Firebase app shared by the identity and storage adapters.
package firebase

import (
	"context"
	"log/slog"

	"portfolio/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds dependencies for the Firebase app, injected by Fx.
type AppParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// App wraps the Firebase app together with the options its clients are built with.
type App struct {
	app    *firebase.App
	cfg    *config.FirebaseConfig
	opts   []option.ClientOption
	logger *slog.Logger
}

// NewApp initializes the Firebase app. Application default credentials are used when no
// credentials file is configured.
func NewApp(params AppParams) (*App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase config is required")
	}

	opts := ClientOptions(cfg)

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(context.Background(), appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("credentials_file", cfg.CredentialsPath != ""),
	)

	return &App{
		app:    app,
		cfg:    cfg,
		opts:   opts,
		logger: params.Logger,
	}, nil
}

// ClientOptions returns the Google API client options derived from cfg.
func ClientOptions(cfg *config.FirebaseConfig) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	return opts
}

// Auth returns the admin auth client.
func (a *App) Auth(ctx context.Context) (*auth.Client, error) {
	client, err := a.app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// Firestore returns a client of the configured database.
func (a *App) Firestore(ctx context.Context) (*firestore.Client, error) {
	databaseID := a.cfg.DatabaseID
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	projectID := a.cfg.ProjectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, a.opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	a.logger.Info("Firestore client created", slog.String("database_id", databaseID))

	return client, nil
}

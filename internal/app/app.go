package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/fleetboard/internal/api"
	"github.com/thenoetrevino/fleetboard/internal/config"
	"github.com/thenoetrevino/fleetboard/internal/database"
	"github.com/thenoetrevino/fleetboard/internal/layout"
	authservice "github.com/thenoetrevino/fleetboard/internal/services/auth"
	dashboardservice "github.com/thenoetrevino/fleetboard/internal/services/dashboard"
	templateservice "github.com/thenoetrevino/fleetboard/internal/services/template"
	vehicleservice "github.com/thenoetrevino/fleetboard/internal/services/vehicle"
	workorderservice "github.com/thenoetrevino/fleetboard/internal/services/workorder"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Local state (sessions and board layouts)
	db   *sql.DB
	repo database.DataStore

	// Remote API
	client *api.Client
	config *config.Config
	logger *slog.Logger

	// Service layer (business logic)
	AuthService      authservice.Service
	WorkOrderService workorderservice.Service
	VehicleService   vehicleservice.Service
	TemplateService  templateservice.Service
	DashboardService dashboardservice.Service
}

// New creates a new App with all services initialized and restores the
// stored session for the configured API, if any. The App takes ownership of
// db and closes it in Close.
func New(ctx context.Context, db *sql.DB, cfg *config.Config, opts ...Option) *App {
	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	clientOpts := []api.Option{api.WithLogger(ac.logger)}
	if ac.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(ac.httpClient))
	}
	clientOpts = append(clientOpts, api.WithTimeout(cfg.Timeout))
	client := api.NewClient(cfg.APIURL, clientOpts...)

	repo := database.NewRepository(db)

	a := &App{
		db:               db,
		repo:             repo,
		client:           client,
		config:           cfg,
		logger:           ac.logger,
		AuthService:      authservice.NewService(client, repo),
		WorkOrderService: workorderservice.NewService(client, repo),
		VehicleService:   vehicleservice.NewService(client),
		TemplateService:  templateservice.NewService(client),
		DashboardService: dashboardservice.NewService(client),
	}

	if _, err := a.AuthService.Restore(ctx); err != nil && !errors.Is(err, authservice.ErrNotLoggedIn) {
		a.logger.Warn("failed to restore session", "api_url", client.BaseURL(), "error", err)
	}
	return a
}

// Config returns the configuration the App was built with.
func (a *App) Config() *config.Config {
	return a.config
}

// APIURL returns the API root the App talks to.
func (a *App) APIURL() string {
	return a.client.BaseURL()
}

// LoggedIn reports whether requests carry a bearer token.
func (a *App) LoggedIn() bool {
	return a.client.Token() != ""
}

// NewPersister starts a background layout writer for the current API.
// Callers must Close it.
func (a *App) NewPersister() *layout.Persister {
	return layout.NewPersister(a.repo, a.client.BaseURL(), layout.WithLogger(a.logger))
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	a.db = nil
	return nil
}

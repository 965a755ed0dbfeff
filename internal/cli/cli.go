package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/fleetboard/internal/app"
	"github.com/thenoetrevino/fleetboard/internal/config"
	"github.com/thenoetrevino/fleetboard/internal/database"
	"github.com/thenoetrevino/fleetboard/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App was injected and belongs to the caller
	owned bool
}

// NewCLI loads the configuration, opens the local database and builds the App
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:   app.New(ctx, db, cfg, app.WithLogger(slog.Default())),
		owned: true,
	}, nil
}

// GetCLIFromContext returns a CLI around the App carried by ctx, if any,
// and otherwise builds a new one with NewCLI.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/fleetboard/internal/app"
	"github.com/thenoetrevino/fleetboard/internal/board"
	"github.com/thenoetrevino/fleetboard/internal/config"
	"github.com/thenoetrevino/fleetboard/internal/database"
	authservice "github.com/thenoetrevino/fleetboard/internal/services/auth"
	"github.com/thenoetrevino/fleetboard/internal/tui"
)

// Launch starts the interactive board for the configured API. It returns
// authservice.ErrNotLoggedIn when there is no saved session.
func Launch(parent context.Context) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(ctx, db, cfg, app.WithLogger(slog.Default()))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	if !application.LoggedIn() {
		return authservice.ErrNotLoggedIn
	}

	slog.Info("board starting", "api_url", application.APIURL())
	return tui.Run(ctx, application, board.Criteria{})
}

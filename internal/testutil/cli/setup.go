package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/fleetboard/internal/api/apitest"
	"github.com/thenoetrevino/fleetboard/internal/app"
	"github.com/thenoetrevino/fleetboard/internal/config"
	"github.com/thenoetrevino/fleetboard/internal/database"
	"github.com/thenoetrevino/fleetboard/internal/models"
	"github.com/thenoetrevino/fleetboard/internal/testutil"
)

// SetupCLITest starts a fake API and returns it with an App that is already
// logged in against it.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*apitest.Server, *app.App) {
	t.Helper()

	srv := apitest.New(t)
	db := testutil.SetupTestDB(t)

	repo := database.NewRepository(db)
	session := &models.Session{
		Token: apitest.Token,
		User:  models.User{ID: 1, Email: apitest.Email, FullName: "Alex Johnson", Role: "admin"},
	}
	if err := repo.SaveSession(context.Background(), srv.URL, session); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}

	return srv, newApp(t, srv, db)
}

// SetupLoggedOutCLITest is SetupCLITest without a stored session
func SetupLoggedOutCLITest(t *testing.T) (*apitest.Server, *app.App) {
	t.Helper()

	srv := apitest.New(t)
	return srv, newApp(t, srv, testutil.SetupTestDB(t))
}

func newApp(t *testing.T, srv *apitest.Server, db *sql.DB) *app.App {
	t.Helper()
	cfg := config.Default()
	cfg.APIURL = srv.URL
	return app.New(context.Background(), db, cfg)
}

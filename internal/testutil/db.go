package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/fleetboard/internal/database"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey carries a prebuilt *app.App into CLI commands under test
const TestAppKey ContextKey = "testApp"

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

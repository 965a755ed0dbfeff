package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// One session per API server
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			api_url TEXT PRIMARY KEY,
			token TEXT NOT NULL,
			user_id INTEGER NOT NULL DEFAULT 0,
			email TEXT NOT NULL DEFAULT '',
			full_name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Local card order, scoped per API server
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS board_layout (
			api_url TEXT NOT NULL,
			card_id TEXT NOT NULL,
			column_key TEXT NOT NULL,
			position INTEGER NOT NULL,
			source_column TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (api_url, card_id)
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_board_layout_column
		ON board_layout(api_url, column_key, position)
	`)
	return err
}

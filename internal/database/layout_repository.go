package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/fleetboard/internal/models"
)

// LayoutRepo stores the local board layout.
type LayoutRepo struct {
	db *sql.DB
}

// SaveLayout replaces the stored layout for apiURL with entries
func (r *LayoutRepo) SaveLayout(ctx context.Context, apiURL string, entries []models.LayoutEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM board_layout WHERE api_url = ?`, apiURL); err != nil {
		return fmt.Errorf("clearing layout: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO board_layout (api_url, card_id, column_key, position, source_column) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, apiURL, e.CardID, e.Column, e.Position, e.SourceColumn); err != nil {
			return fmt.Errorf("saving layout entry %s: %w", e.CardID, err)
		}
	}

	return tx.Commit()
}

// GetLayout returns the stored layout for apiURL ordered by column and position
func (r *LayoutRepo) GetLayout(ctx context.Context, apiURL string) ([]models.LayoutEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT card_id, column_key, position, source_column
		 FROM board_layout WHERE api_url = ?
		 ORDER BY column_key, position`, apiURL)
	if err != nil {
		return nil, fmt.Errorf("querying layout: %w", err)
	}
	defer rows.Close()

	entries := []models.LayoutEntry{}
	for rows.Next() {
		var e models.LayoutEntry
		if err := rows.Scan(&e.CardID, &e.Column, &e.Position, &e.SourceColumn); err != nil {
			return nil, fmt.Errorf("scanning layout row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating layout rows: %w", err)
	}
	return entries, nil
}

// ClearLayout removes the stored layout for apiURL
func (r *LayoutRepo) ClearLayout(ctx context.Context, apiURL string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM board_layout WHERE api_url = ?`, apiURL)
	return err
}

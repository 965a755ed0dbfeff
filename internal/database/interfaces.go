package database

import (
	"context"

	"github.com/thenoetrevino/fleetboard/internal/models"
)

// LayoutRepository persists the local board order.
type LayoutRepository interface {
	SaveLayout(ctx context.Context, apiURL string, entries []models.LayoutEntry) error
	GetLayout(ctx context.Context, apiURL string) ([]models.LayoutEntry, error)
	ClearLayout(ctx context.Context, apiURL string) error
}

// SessionRepository persists the authenticated session.
type SessionRepository interface {
	SaveSession(ctx context.Context, apiURL string, session *models.Session) error
	GetSession(ctx context.Context, apiURL string) (*models.Session, error)
	DeleteSession(ctx context.Context, apiURL string) error
}

// DataStore defines the unified interface for all local data operations.
type DataStore interface {
	LayoutRepository
	SessionRepository
}

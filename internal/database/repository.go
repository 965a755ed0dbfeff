package database

import "database/sql"

// Repository provides a unified interface to all local data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*LayoutRepo
	*SessionRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		LayoutRepo:  &LayoutRepo{db: db},
		SessionRepo: &SessionRepo{db: db},
	}
}

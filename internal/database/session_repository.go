package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thenoetrevino/fleetboard/internal/models"
)

// ErrNoSession is returned when no session is stored for an API server
var ErrNoSession = errors.New("no stored session")

// SessionRepo stores the authenticated session per API server.
type SessionRepo struct {
	db *sql.DB
}

// SaveSession stores session for apiURL, replacing any previous one
func (r *SessionRepo) SaveSession(ctx context.Context, apiURL string, session *models.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (api_url, token, user_id, email, full_name, role)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(api_url) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			email = excluded.email,
			full_name = excluded.full_name,
			role = excluded.role,
			created_at = CURRENT_TIMESTAMP`,
		apiURL, session.Token, session.User.ID, session.User.Email, session.User.FullName, session.User.Role,
	)
	return err
}

// GetSession returns the stored session for apiURL or ErrNoSession
func (r *SessionRepo) GetSession(ctx context.Context, apiURL string) (*models.Session, error) {
	session := &models.Session{}
	err := r.db.QueryRowContext(ctx,
		`SELECT token, user_id, email, full_name, role FROM sessions WHERE api_url = ?`,
		apiURL,
	).Scan(&session.Token, &session.User.ID, &session.User.Email, &session.User.FullName, &session.User.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession forgets the session for apiURL. Deleting a missing session is not an error.
func (r *SessionRepo) DeleteSession(ctx context.Context, apiURL string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE api_url = ?`, apiURL)
	return err
}

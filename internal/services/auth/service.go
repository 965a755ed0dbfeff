package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/thenoetrevino/fleetboard/internal/api"
	"github.com/thenoetrevino/fleetboard/internal/database"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

// MinPasswordLength is enforced on signup only; existing accounts may predate it
const MinPasswordLength = 8

// Service defines session operations
type Service interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Signup(ctx context.Context, req SignupRequest) (*models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
	Restore(ctx context.Context) (*models.Session, error)
}

// SignupRequest encapsulates data for creating an account
type SignupRequest struct {
	Email    string
	FullName string
	Password string
}

type apiClient interface {
	BaseURL() string
	SetToken(token string)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Signup(ctx context.Context, email, fullName, password string) (*models.Session, error)
}

type service struct {
	client   apiClient
	sessions database.SessionRepository
}

// NewService creates a new auth service storing sessions in sessions
func NewService(client apiClient, sessions database.SessionRepository) Service {
	return &service{client: client, sessions: sessions}
}

// Login exchanges credentials for a session and stores it
func (s *service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	session, err := s.client.Login(ctx, email, password)
	if errors.Is(err, api.ErrUnauthorized) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return s.persist(ctx, session)
}

// Signup creates an account and stores its session
func (s *service) Signup(ctx context.Context, req SignupRequest) (*models.Session, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	if len(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	session, err := s.client.Signup(ctx, email, fullName, req.Password)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	return s.persist(ctx, session)
}

// Logout forgets the stored session
func (s *service) Logout(ctx context.Context) error {
	s.client.SetToken("")
	if err := s.sessions.DeleteSession(ctx, s.client.BaseURL()); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	slog.Info("logged out", "api_url", s.client.BaseURL())
	return nil
}

// Current returns the stored session or ErrNotLoggedIn
func (s *service) Current(ctx context.Context) (*models.Session, error) {
	session, err := s.sessions.GetSession(ctx, s.client.BaseURL())
	if errors.Is(err, database.ErrNoSession) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return session, nil
}

// Restore loads the stored session into the API client. It returns
// ErrNotLoggedIn when there is nothing to restore.
func (s *service) Restore(ctx context.Context) (*models.Session, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	s.client.SetToken(session.Token)
	return session, nil
}

func (s *service) persist(ctx context.Context, session *models.Session) (*models.Session, error) {
	if session.Token == "" {
		return nil, fmt.Errorf("server returned an empty token")
	}
	if err := s.sessions.SaveSession(ctx, s.client.BaseURL(), session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	s.client.SetToken(session.Token)
	slog.Info("session stored", "api_url", s.client.BaseURL(), "user", session.User.Email)
	return session, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(email), nil
}

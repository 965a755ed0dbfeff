package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/fleetboard/internal/api"
	"github.com/thenoetrevino/fleetboard/internal/api/apitest"
	"github.com/thenoetrevino/fleetboard/internal/database"
)

func setup(t *testing.T) (*api.Client, *database.Repository, Service) {
	t.Helper()

	srv := apitest.New(t)
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	client := api.NewClient(srv.URL)
	repo := database.NewRepository(db)
	return client, repo, NewService(client, repo)
}

func TestLogin(t *testing.T) {
	client, repo, svc := setup(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, "  ALEX@gomaintenance.io ", apitest.Password)
	require.NoError(t, err)
	assert.Equal(t, apitest.Token, session.Token)
	assert.Equal(t, apitest.Token, client.Token())

	stored, err := repo.GetSession(ctx, client.BaseURL())
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", stored.User.FullName)
}

func TestLogin_Errors(t *testing.T) {
	client, _, svc := setup(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "not-an-email", "x")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Login(ctx, apitest.Email, "")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = svc.Login(ctx, apitest.Email, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, client.Token())

	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSignup(t *testing.T) {
	client, _, svc := setup(t)
	ctx := context.Background()

	session, err := svc.Signup(ctx, SignupRequest{Email: "sam@example.com", FullName: " Sam Lee ", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", session.User.FullName)
	assert.NotEmpty(t, client.Token())

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", current.User.Email)
}

func TestSignup_Validation(t *testing.T) {
	_, _, svc := setup(t)

	tests := []struct {
		name string
		req  SignupRequest
		want error
	}{
		{"bad email", SignupRequest{Email: "sam", FullName: "Sam", Password: "hunter22"}, ErrInvalidEmail},
		{"display name email", SignupRequest{Email: "Sam <sam@example.com>", FullName: "Sam", Password: "hunter22"}, ErrInvalidEmail},
		{"no name", SignupRequest{Email: "sam@example.com", Password: "hunter22"}, ErrEmptyFullName},
		{"short password", SignupRequest{Email: "sam@example.com", FullName: "Sam", Password: "short"}, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	_, _, svc := setup(t)

	_, err := svc.Signup(context.Background(), SignupRequest{Email: apitest.Email, FullName: "Alex", Password: "hunter22"})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestLogoutAndRestore(t *testing.T) {
	client, _, svc := setup(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, apitest.Email, apitest.Password)
	require.NoError(t, err)

	client.SetToken("")
	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, apitest.Token, restored.Token)
	assert.Equal(t, apitest.Token, client.Token())

	require.NoError(t, svc.Logout(ctx))
	assert.Empty(t, client.Token())

	_, err = svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

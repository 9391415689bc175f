package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alclearn/admin-console/internal/api"
	"github.com/alclearn/admin-console/internal/model"
)

// ErrNotStaff is returned when credentials are valid but the account lacks
// the staff flag. The token is not persisted in that case.
var ErrNotStaff = errors.New("account has no admin access")

// Entry exchanges credentials for a session. It is the only component that
// creates the stored session.
type Entry struct {
	client *api.Client
	store  *Store
	log    zerolog.Logger
}

// NewEntry creates an Entry using client for the users API.
func NewEntry(client *api.Client, store *Store, log zerolog.Logger) *Entry {
	return &Entry{
		client: client,
		store:  store,
		log:    log.With().Str("component", "session_entry").Logger(),
	}
}

// Login posts the credentials and, on success, requires the staff flag
// before persisting anything. Never retries.
func (e *Entry) Login(ctx context.Context, email, password string) (*model.User, error) {
	var resp model.LoginResponse
	err := e.client.PublicPost(ctx, "/users/login/", model.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if !resp.User.IsStaff {
		e.log.Warn().Str("email", email).Msg("login denied: not staff")
		return nil, ErrNotStaff
	}

	if err := e.store.Save(Session{
		AccessToken:  resp.Tokens.Access,
		RefreshToken: resp.Tokens.Refresh,
		User:         resp.User,
	}); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	e.log.Info().Str("email", email).Msg("signed in")
	return &resp.User, nil
}

// Logout destroys the stored session.
func (e *Entry) Logout() error {
	return e.store.Clear()
}

// ConfirmPasswordReset completes a reset link. Public endpoint; the link
// itself carries the authorization.
func (e *Entry) ConfirmPasswordReset(ctx context.Context, userID, token, newPassword string) error {
	path := fmt.Sprintf("/users/reset-password-confirm/%s/%s/", userID, token)
	return e.client.PublicPost(ctx, path, model.ResetConfirmRequest{NewPassword: newPassword}, nil)
}

// LoginMessage maps a login failure to the message shown on the login screen.
func LoginMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotStaff):
		return "You do not have permission to access this console."
	case api.IsUnauthorized(err):
		return "Email or password is incorrect."
	case api.IsBadRequest(err):
		return "Please check the entered data and try again."
	default:
		return "Sign-in failed. Check your details and try again."
	}
}

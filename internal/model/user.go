package model

import "time"

// User is the account object returned by the login endpoint and persisted
// alongside the tokens.
type User struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	IsStaff bool   `json:"is_staff"`
}

// TokenPair carries the access and refresh tokens minted at login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginRequest is the POST /users/login/ payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the POST /users/login/ response body.
type LoginResponse struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// PasswordResetRequest is a pending "forgot password" entry. Read-only except
// for IsHandled, which transitions false to true exactly once.
type PasswordResetRequest struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	ResetLink string    `json:"reset_link"`
	CreatedAt time.Time `json:"created_at"`
	IsHandled bool      `json:"is_handled"`
}

// ResetConfirmRequest is the POST /users/reset-password-confirm/ payload.
type ResetConfirmRequest struct {
	NewPassword string `json:"new_password"`
}

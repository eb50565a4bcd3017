package domain

import (
	"context"
	"time"
)

// AuthContext is the caller's capability set, resolved once per request and
// passed explicitly to every service call that needs it.
type AuthContext struct {
	Token     string
	Subject   string
	IsAdmin   bool
	ExpiresAt *time.Time
}

// Anonymous returns the AuthContext of a visitor without a session.
func Anonymous() AuthContext {
	return AuthContext{}
}

// TokenClaims is what can be read from a session token without the backend.
type TokenClaims struct {
	Subject   string
	ExpiresAt *time.Time
}

// TokenInspector reads claims from a session token without verifying its
// signature. Only the backend decides whether a token is valid.
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
}

// SessionGateway is the backend's login and session validation surface.
type SessionGateway interface {
	Login(ctx context.Context, username, password string) (token string, err error)
	Validate(ctx context.Context, token string) (valid bool, err error)
}

// AuthService logs admins in and turns bearer tokens into an AuthContext.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Resolve(ctx context.Context, token string) (AuthContext, error)
}

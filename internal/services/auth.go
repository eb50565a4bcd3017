package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"boardbevy/internal/domain"
)

type authService struct {
	sessions       domain.SessionGateway
	inspector      domain.TokenInspector
	now            func() time.Time
	contextTimeout time.Duration
}

// NewAuthService creates an AuthService backed by the hub backend's session
// endpoints. now defaults to time.Now.
func NewAuthService(sessions domain.SessionGateway, inspector domain.TokenInspector, now func() time.Time, timeout time.Duration) domain.AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		sessions:       sessions,
		inspector:      inspector,
		now:            now,
		contextTimeout: timeout,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", invalid("username and password are required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	token, err := s.sessions.Login(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return token, nil
}

// Resolve turns a bearer token into the caller's AuthContext. No token is an
// anonymous visitor; a token the backend rejects is ErrUnauthorized.
func (s *authService) Resolve(ctx context.Context, token string) (domain.AuthContext, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Anonymous(), nil
	}

	var (
		subject   string
		expiresAt *time.Time
	)
	if claims, err := s.inspector.Inspect(token); err == nil {
		if claims.ExpiresAt != nil && !claims.ExpiresAt.After(s.now()) {
			return domain.Anonymous(), fmt.Errorf("session expired: %w", domain.ErrUnauthorized)
		}
		subject, expiresAt = claims.Subject, claims.ExpiresAt
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	valid, err := s.sessions.Validate(ctx, token)
	if err != nil {
		return domain.Anonymous(), fmt.Errorf("validate session: %w", err)
	}
	if !valid {
		return domain.Anonymous(), fmt.Errorf("invalid session: %w", domain.ErrUnauthorized)
	}
	return domain.AuthContext{Token: token, Subject: subject, IsAdmin: true, ExpiresAt: expiresAt}, nil
}

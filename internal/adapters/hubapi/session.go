package hubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"boardbevy/internal/domain"
)

type sessionGateway struct {
	c *Client
}

// NewSessionGateway returns the backend's /login and /validate-session endpoints.
func NewSessionGateway(c *Client) domain.SessionGateway {
	return &sessionGateway{c: c}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (g *sessionGateway) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	if err := g.c.do(ctx, http.MethodPost, "/login", loginRequest{Username: username, Password: password}, &resp); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) {
			return "", fmt.Errorf("login: %w", domain.ErrUnauthorized)
		}
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: %w", domain.ErrUnauthorized)
	}
	return resp.Token, nil
}

type validateRequest struct {
	Token string `json:"token"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

// Validate reports whether the backend still accepts token. A 401 from the
// backend is a definite "no", not a failure.
func (g *sessionGateway) Validate(ctx context.Context, token string) (bool, error) {
	var resp validateResponse
	if err := g.c.do(ctx, http.MethodPost, "/validate-session", validateRequest{Token: token}, &resp); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return false, nil
		}
		return false, err
	}
	return resp.Valid, nil
}

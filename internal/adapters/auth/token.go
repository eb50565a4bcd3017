package auth

import (
	"fmt"

	"boardbevy/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector returns a TokenInspector that reads the claims of a
// session token issued by the hub backend. The signature is not checked;
// the backend's /validate-session remains the authority.
func NewJWTInspector() domain.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

func (i *jwtInspector) Inspect(token string) (*domain.TokenClaims, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := i.parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}
	out := &domain.TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		out.ExpiresAt = &exp
	}
	return out, nil
}

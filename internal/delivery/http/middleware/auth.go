package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "boardbevy/internal/delivery/http/helpers"
	"boardbevy/internal/domain"
)

type contextKey string

const authKey contextKey = "auth"

// SetAuth returns a context carrying the caller's AuthContext.
func SetAuth(ctx context.Context, auth domain.AuthContext) context.Context {
	return context.WithValue(ctx, authKey, auth)
}

// AuthFromContext returns the caller's AuthContext, or an anonymous one when
// ResolveAuth did not run.
func AuthFromContext(ctx context.Context) domain.AuthContext {
	auth, ok := ctx.Value(authKey).(domain.AuthContext)
	if !ok {
		return domain.Anonymous()
	}
	return auth
}

// ResolveAuth returns a wrapper that turns the Bearer token, if any, into an
// AuthContext stored in the request context. Requests without a token go
// through as anonymous; a token the backend rejects is answered with 401.
func ResolveAuth(resolver domain.AuthService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next(w, r.WithContext(SetAuth(r.Context(), domain.Anonymous())))
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			auth, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired session")
					return
				}
				logger.ErrorContext(r.Context(), "session lookup failed", "path", r.URL.Path, "method", r.Method, "err", err)
				h.WriteJSONError(w, http.StatusBadGateway, h.ErrCodeUpstream, "could not validate session")
				return
			}
			next(w, r.WithContext(SetAuth(r.Context(), auth)))
		}
	}
}

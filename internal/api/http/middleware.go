package http

import (
	"context"
	"net/http"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/security"
)

type contextKey string

const principalKey contextKey = "principal"

// AuthMiddleware validates the bearer token and attaches the resulting
// principal to the request context. Everything behind it can assume an
// authenticated caller.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization token is not provided"})
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			principal := domain.Principal{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			}
			next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
		})
	}
}

// extractToken pulls the token from the Authorization header, falling back to
// the "token" query parameter for the websocket handshake, where browsers
// cannot set headers.
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header != "" {
		if len(header) > 7 && strings.EqualFold(header[0:7], "Bearer ") {
			return header[7:]
		}
		return header
	}
	return r.URL.Query().Get("token")
}

func withPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipal returns the authenticated caller set by AuthMiddleware.
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

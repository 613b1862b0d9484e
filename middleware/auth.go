// Package middleware provides the HTTP request chain: auth gate and
// request logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mdtaufique8084/TMS/auth"
)

// contextKey is a custom type to avoid context key collisions.
type contextKey string

// userIDKey is the key under which the authenticated user's ID is stored
// in the request context.
const userIDKey contextKey = "userId"

// UserID returns the authenticated user's ID attached by Auth.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// WithUserID returns a context carrying the given user ID. Exposed for
// handler tests that bypass the middleware chain.
func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// Auth verifies the Bearer token on every request and attaches the user ID
// to the request context. A missing or malformed Authorization header is
// rejected with 401 before the token is even looked at; a token that fails
// verification is rejected with 403.
func Auth(signer auth.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "Authorization header missing")
				return
			}

			// The header is expected in the form "Bearer <token>".
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				respondError(w, http.StatusUnauthorized, "Invalid Authorization header format")
				return
			}

			claims, err := signer.Parse(parts[1])
			if err != nil {
				respondError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

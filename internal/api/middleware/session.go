package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dento-health/dento-portal/backend/internal/application/services"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
)

type sessionContextKey struct{}

// SessionInfo is the logged-in identity attached to a request
type SessionInfo struct {
	Token    string
	UserID   string
	UserType entities.UserType
}

// SessionFromContext returns the session attached by SessionMiddleware,
// if any
func SessionFromContext(ctx context.Context) (*SessionInfo, bool) {
	info, ok := ctx.Value(sessionContextKey{}).(*SessionInfo)
	return info, ok
}

// SessionMiddleware resolves the session cookie against the session
// store and attaches the identity to the request context. Requests
// without a valid session pass through unauthenticated; RequireAuth
// decides which routes need one.
func SessionMiddleware(auth *services.AuthService, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := auth.SessionFromToken(r.Context(), cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			info := &SessionInfo{
				Token:    cookie.Value,
				UserID:   session.UserID,
				UserType: session.UserType,
			}
			ctx := context.WithValue(r.Context(), sessionContextKey{}, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no valid session
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireUserType rejects sessions whose account type is not in the
// allowed set
func RequireUserType(types ...entities.UserType) func(http.HandlerFunc) http.HandlerFunc {
	allowed := make(map[entities.UserType]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			info, ok := SessionFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !allowed[info.UserType] {
				writeAuthError(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}

func writeAuthError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

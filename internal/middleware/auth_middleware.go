package middleware

import (
	"context"
	"net/http"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/auth"
)

type contextKey string

const (
	ContextUserID contextKey = "userID"
	ContextRole   contextKey = "role"
)

// RequireRole validates the token cookie and, when roles are given,
// requires the claim role to be one of them. The user id and role land in
// the request context.
func RequireRole(am *auth.Manager, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := am.ValidateJWT(cookie.Value)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if len(roles) > 0 && !contains(roles, claims.Role) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// UserID pulls the authenticated user id out of the request context.
func UserID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(ContextUserID).(string)
	return id, ok
}

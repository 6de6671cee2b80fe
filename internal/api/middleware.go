package api

import (
	"context"
	"net/http"
	"strings"

	"resume-matcher/internal/storage"
)

type contextKey string

const userIDKey contextKey = "userID"

// requireAuth verifies the bearer token and stores the authenticated
// user id in the request context.
func (a *API) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, prefix) {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		subject, err := a.verifier.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, subject)
		next(w, r.WithContext(ctx))
	}
}

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// currentUser loads the account behind the request token.
func (a *API) currentUser(r *http.Request) (*storage.User, error) {
	return a.users.UserByID(r.Context(), userIDFrom(r.Context()))
}

package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

type ctxKey struct{}

func withUser(ctx context.Context, u entities.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// currentUser is only valid behind Authenticate.
func currentUser(r *http.Request) entities.User {
	u, _ := r.Context().Value(ctxKey{}).(entities.User)
	return u
}

// Authenticate resolves the bearer token to a user and stores it in the
// request context.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
			return
		}
		u, err := h.userUC.Authenticate(r.Context(), token)
		if err != nil {
			h.handleError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
	})
}

func (h *Handler) RequireRole(roles ...entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := currentUser(r)
			if !u.HasRole(roles...) {
				h.logger.Debug("role check failed", "user_id", u.ID, "path", r.URL.Path)
				writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

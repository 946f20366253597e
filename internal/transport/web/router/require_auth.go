package router

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/game-discovery/internal/domain"
)

// requireAuthMiddleware rejects requests that no validator attached a user to.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.UserIDFromContext(r.Context()) == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "unauthenticated request to user endpoint", "path", r.URL.Path)
			writeUnauthorized(w, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

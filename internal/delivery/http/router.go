package http //nolint:revive // directory-based package name, imported with alias

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

func NewRouter(h *Handler, apiKeys map[string]bool) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(requireAPIKey(apiKeys))

	r.Post("/api/payment", h.HandleCreatePayment)
	r.Get("/api/payment/status", h.HandleMutationStatus)

	return r
}

// requireAPIKey rejects requests whose credential is not in the allow-list.
// The list is a closure argument, never package state.
func requireAPIKey(apiKeys map[string]bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Api-Key")
			if key == "" {
				key = r.URL.Query().Get("apikey")
			}
			if !apiKeys[key] {
				http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// internal/app/features/alerts/routes.go
package alerts

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /alerts.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

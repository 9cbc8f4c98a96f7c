// internal/app/features/buildings/routes.go
package buildings

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /buildings.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{buildingID}", h.Get)
	return r
}

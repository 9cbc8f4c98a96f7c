// internal/app/features/incidents/routes.go
package incidents

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /incidents.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Report)
	r.Post("/{incidentID}/status", h.SetStatus)
	return r
}

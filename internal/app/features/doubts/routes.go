// internal/app/features/doubts/routes.go
package doubts

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /doubts.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/{doubtID}/answers", h.AddAnswer)
	r.Post("/{doubtID}/resolve", h.Resolve)
	return r
}

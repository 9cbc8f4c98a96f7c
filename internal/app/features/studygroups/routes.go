// internal/app/features/studygroups/routes.go
package studygroups

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /study-groups.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/{groupID}/join", h.Join)
	r.Post("/{groupID}/leave", h.Leave)
	return r
}

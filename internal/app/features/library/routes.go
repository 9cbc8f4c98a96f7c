// internal/app/features/library/routes.go
package library

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /library.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/books", h.ListBooks)
	r.Get("/books/search", h.SearchBooks)
	r.Post("/books/{bookID}/reserve", h.Reserve)
	r.Post("/books/{bookID}/return", h.Return)
	return r
}

// internal/app/features/food/routes.go
package food

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /food.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/vendors", h.ListVendors)
	r.Post("/vendors/{vendorID}/orders", h.Order)
	return r
}

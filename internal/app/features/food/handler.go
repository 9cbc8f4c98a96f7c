// internal/app/features/food/handler.go
package food

import (
	"net/http"

	"go.uber.org/zap"

	vendorstore "github.com/campushub/campushub/internal/app/store/vendors"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/notify"
)

// Handler holds dependencies for the food-ordering endpoints.
type Handler struct {
	Store  *vendorstore.Store
	Notify notify.Notifier
	Log    *zap.Logger
}

// NewHandler constructs a food Handler.
func NewHandler(store *vendorstore.Store, notifier notify.Notifier, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Notify: notifier, Log: logger}
}

// ListVendors serves GET /food/vendors.
func (h *Handler) ListVendors(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.Store.List(r.Context()))
}

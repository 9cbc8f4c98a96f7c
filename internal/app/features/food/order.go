// internal/app/features/food/order.go
package food

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	vendorstore "github.com/campushub/campushub/internal/app/store/vendors"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
)

// orderConfirmDuration is the display hint for order confirmations.
const orderConfirmDuration = 5 * time.Second

type orderRequest struct {
	Items []vendorstore.OrderItem `json:"items"`
}

// Order serves POST /food/vendors/{vendorID}/orders. Orders are priced
// and confirmed but never deplete menu inventory.
func (h *Handler) Order(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "vendorID")

	var req orderRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		h.Log.Error("failed to decode order request", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		httpjson.Error(w, http.StatusUnprocessableEntity, "items must not be empty")
		return
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			httpjson.Error(w, http.StatusUnprocessableEntity, "quantity must be at least 1")
			return
		}
	}

	order, err := h.Store.PriceOrder(r.Context(), vendorID, req.Items)
	if errors.Is(err, vendorstore.ErrNotFound) {
		metrics.ObserveOperation("food", metrics.OutcomeNotFound)
		httpjson.Error(w, http.StatusNotFound, "food vendor not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to price order", zap.Error(err), zap.String("vendor_id", vendorID))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("food", metrics.OutcomeOK)
	n := notify.Success("Order placed successfully!",
		fmt.Sprintf("Your order from %s for $%.2f has been placed.", order.VendorName, order.Total))
	n.Duration = orderConfirmDuration
	h.Notify.Notify(r.Context(), n)

	httpjson.Write(w, http.StatusOK, order)
}

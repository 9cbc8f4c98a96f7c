// internal/app/features/alerts/handler.go
package alerts

import (
	"net/http"

	"go.uber.org/zap"

	alertstore "github.com/campushub/campushub/internal/app/store/alerts"
	"github.com/campushub/campushub/internal/app/system/httpjson"
)

// Handler holds dependencies for the emergency-alert endpoints.
type Handler struct {
	Store *alertstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an alerts Handler.
func NewHandler(store *alertstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// List serves GET /alerts, newest first. Dismissal is presentation
// state; the server always returns the full active list.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.Store.List(r.Context()))
}

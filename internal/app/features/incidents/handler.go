// internal/app/features/incidents/handler.go
package incidents

import (
	"net/http"

	"go.uber.org/zap"

	incidentstore "github.com/campushub/campushub/internal/app/store/incidents"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/notify"
)

// Handler holds dependencies for the incident-report endpoints.
type Handler struct {
	Store  *incidentstore.Store
	Notify notify.Notifier
	Log    *zap.Logger
}

// NewHandler constructs an incidents Handler.
func NewHandler(store *incidentstore.Store, notifier notify.Notifier, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Notify: notifier, Log: logger}
}

// List serves GET /incidents, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.Store.List(r.Context()))
}

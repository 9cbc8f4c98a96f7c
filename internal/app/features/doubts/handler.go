// internal/app/features/doubts/handler.go
package doubts

import (
	"net/http"

	"go.uber.org/zap"

	doubtstore "github.com/campushub/campushub/internal/app/store/doubts"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/notify"
)

// Handler holds dependencies for the Q&A board endpoints.
type Handler struct {
	Store  *doubtstore.Store
	Notify notify.Notifier
	Log    *zap.Logger
}

// NewHandler constructs a doubts Handler.
func NewHandler(store *doubtstore.Store, notifier notify.Notifier, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Notify: notifier, Log: logger}
}

// List serves GET /doubts, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.Store.List(r.Context()))
}

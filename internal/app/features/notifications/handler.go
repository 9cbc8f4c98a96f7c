// internal/app/features/notifications/handler.go
package notifications

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/notify"
)

// Handler serves the recent-notification feed.
type Handler struct {
	Feed *notify.Feed
	Log  *zap.Logger
}

// NewHandler constructs a notifications Handler.
func NewHandler(feed *notify.Feed, logger *zap.Logger) *Handler {
	return &Handler{Feed: feed, Log: logger}
}

// List serves GET /notifications, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items := h.Feed.Recent()
	if items == nil {
		items = []notify.Notification{}
	}
	httpjson.Write(w, http.StatusOK, items)
}

// internal/app/features/studygroups/handler.go
package studygroups

import (
	"go.uber.org/zap"

	groupstore "github.com/campushub/campushub/internal/app/store/studygroups"
	"github.com/campushub/campushub/internal/app/system/notify"
)

// Handler holds dependencies for the study-group endpoints.
type Handler struct {
	Store  *groupstore.Store
	Notify notify.Notifier
	Log    *zap.Logger
}

// NewHandler constructs a study-groups Handler.
func NewHandler(store *groupstore.Store, notifier notify.Notifier, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Notify: notifier, Log: logger}
}

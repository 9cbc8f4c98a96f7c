// internal/app/features/doubts/resolve.go
package doubts

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	doubtstore "github.com/campushub/campushub/internal/app/store/doubts"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
)

// Resolve serves POST /doubts/{doubtID}/resolve. Resolving twice is
// harmless; the doubt stays resolved.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	doubtID := chi.URLParam(r, "doubtID")

	doubt, err := h.Store.Resolve(r.Context(), doubtID)
	if errors.Is(err, doubtstore.ErrNotFound) {
		metrics.ObserveOperation("doubts", metrics.OutcomeNotFound)
		httpjson.Error(w, http.StatusNotFound, "doubt not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to resolve doubt", zap.Error(err), zap.String("doubt_id", doubtID))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("doubts", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Success("Question resolved",
		"The question has been marked as resolved."))

	httpjson.Write(w, http.StatusOK, doubt)
}

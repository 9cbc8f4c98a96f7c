// internal/app/features/doubts/answer.go
package doubts

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	doubtstore "github.com/campushub/campushub/internal/app/store/doubts"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/identity"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
	"github.com/campushub/campushub/internal/app/system/sanitize"
)

type addAnswerRequest struct {
	Content string `json:"content"`
}

// AddAnswer serves POST /doubts/{doubtID}/answers. Empty content is
// rejected before it reaches the store.
func (h *Handler) AddAnswer(w http.ResponseWriter, r *http.Request) {
	doubtID := chi.URLParam(r, "doubtID")

	var req addAnswerRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		h.Log.Error("failed to decode answer request", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content := sanitize.Text(req.Content)
	if content == "" {
		httpjson.Error(w, http.StatusUnprocessableEntity, "content is required")
		return
	}

	user := identity.CurrentUser(r)
	doubt, err := h.Store.AddAnswer(r.Context(), doubtID, content, user.ID)
	if errors.Is(err, doubtstore.ErrNotFound) {
		metrics.ObserveOperation("doubts", metrics.OutcomeNotFound)
		httpjson.Error(w, http.StatusNotFound, "doubt not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to add answer", zap.Error(err), zap.String("doubt_id", doubtID))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("doubts", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Success("Answer posted",
		"Your answer has been added to the question."))

	httpjson.Write(w, http.StatusOK, doubt)
}

// internal/app/features/doubts/create.go
package doubts

import (
	"net/http"

	"go.uber.org/zap"

	doubtstore "github.com/campushub/campushub/internal/app/store/doubts"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
	"github.com/campushub/campushub/internal/app/system/sanitize"
)

type createDoubtRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Course      string `json:"course"`
	Anonymous   bool   `json:"anonymous"`
}

// Create serves POST /doubts. New doubts are unresolved, have no
// answers, and appear at the front of the board.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDoubtRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		h.Log.Error("failed to decode doubt request", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	title := sanitize.Text(req.Title)
	if title == "" {
		httpjson.Error(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	doubt, err := h.Store.Create(r.Context(), doubtstore.CreateInput{
		Title:       title,
		Description: sanitize.Text(req.Description),
		Subject:     sanitize.Text(req.Subject),
		Course:      sanitize.Text(req.Course),
		Anonymous:   req.Anonymous,
	})
	if err != nil {
		h.Log.Error("failed to create doubt", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("doubts", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Success("Question posted",
		"Your question has been posted anonymously."))

	httpjson.Write(w, http.StatusCreated, doubt)
}

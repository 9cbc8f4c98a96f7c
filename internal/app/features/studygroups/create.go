// internal/app/features/studygroups/create.go
package studygroups

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	groupstore "github.com/campushub/campushub/internal/app/store/studygroups"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/identity"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
	"github.com/campushub/campushub/internal/app/system/sanitize"
)

type createGroupRequest struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Subject         string    `json:"subject"`
	Course          string    `json:"course"`
	DateTime        time.Time `json:"date_time"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"max_participants"`
}

// Create serves POST /study-groups. The creator joins the new group
// automatically.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		h.Log.Error("failed to decode study group request", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := sanitize.Text(req.Name)
	if name == "" {
		httpjson.Error(w, http.StatusUnprocessableEntity, "name is required")
		return
	}
	if req.MaxParticipants < 1 {
		httpjson.Error(w, http.StatusUnprocessableEntity, "max_participants must be at least 1")
		return
	}

	user := identity.CurrentUser(r)
	group, err := h.Store.Create(r.Context(), groupstore.CreateInput{
		Name:            name,
		Description:     sanitize.Text(req.Description),
		Subject:         sanitize.Text(req.Subject),
		Course:          sanitize.Text(req.Course),
		DateTime:        req.DateTime,
		Location:        sanitize.Text(req.Location),
		MaxParticipants: req.MaxParticipants,
	}, user.ID)
	if err != nil {
		h.Log.Error("failed to create study group", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("study_groups", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Success("Study group created!",
		fmt.Sprintf("Your group %q has been created.", group.Name)))

	httpjson.Write(w, http.StatusCreated, group)
}

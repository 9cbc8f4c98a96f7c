// internal/app/features/studygroups/membership.go
package studygroups

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	groupstore "github.com/campushub/campushub/internal/app/store/studygroups"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/identity"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
)

// Join serves POST /study-groups/{groupID}/join. A full group or an
// existing membership rejects the request and leaves the group
// unchanged.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	user := identity.CurrentUser(r)

	group, err := h.Store.Join(r.Context(), groupID, user.ID)
	switch {
	case errors.Is(err, groupstore.ErrNotFound):
		metrics.ObserveOperation("study_groups", metrics.OutcomeNotFound)
		httpjson.Error(w, http.StatusNotFound, "study group not found")
		return
	case errors.Is(err, groupstore.ErrAlreadyMember), errors.Is(err, groupstore.ErrGroupFull):
		metrics.ObserveOperation("study_groups", metrics.OutcomeRejected)
		httpjson.Error(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Log.Error("failed to join study group", zap.Error(err), zap.String("group_id", groupID))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("study_groups", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Success("Joined study group",
		fmt.Sprintf("You've joined %q.", group.Name)))

	httpjson.Write(w, http.StatusOK, group)
}

// Leave serves POST /study-groups/{groupID}/leave. Leaving a group the
// user is not in rejects the request.
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	user := identity.CurrentUser(r)

	group, err := h.Store.Leave(r.Context(), groupID, user.ID)
	switch {
	case errors.Is(err, groupstore.ErrNotFound):
		metrics.ObserveOperation("study_groups", metrics.OutcomeNotFound)
		httpjson.Error(w, http.StatusNotFound, "study group not found")
		return
	case errors.Is(err, groupstore.ErrNotMember):
		metrics.ObserveOperation("study_groups", metrics.OutcomeRejected)
		httpjson.Error(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Log.Error("failed to leave study group", zap.Error(err), zap.String("group_id", groupID))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("study_groups", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Info("Left study group",
		fmt.Sprintf("You've left %q.", group.Name)))

	httpjson.Write(w, http.StatusOK, group)
}

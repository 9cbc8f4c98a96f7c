// internal/app/features/incidents/status.go
package incidents

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	incidentstore "github.com/campushub/campushub/internal/app/store/incidents"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
)

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus serves POST /incidents/{incidentID}/status. Status only
// moves forward through pending, reviewing, resolved.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	incidentID := chi.URLParam(r, "incidentID")

	var req setStatusRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		h.Log.Error("failed to decode status request", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.Store.SetStatus(r.Context(), incidentID, req.Status)
	switch {
	case errors.Is(err, incidentstore.ErrNotFound):
		metrics.ObserveOperation("incidents", metrics.OutcomeNotFound)
		httpjson.Error(w, http.StatusNotFound, "incident report not found")
		return
	case errors.Is(err, incidentstore.ErrBadStatus):
		metrics.ObserveOperation("incidents", metrics.OutcomeRejected)
		httpjson.Error(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Log.Error("failed to set incident status", zap.Error(err), zap.String("incident_id", incidentID))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("incidents", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Info("Report updated",
		fmt.Sprintf("Incident report is now %s.", report.Status)))

	httpjson.Write(w, http.StatusOK, report)
}

// internal/app/features/incidents/report.go
package incidents

import (
	"net/http"

	"go.uber.org/zap"

	incidentstore "github.com/campushub/campushub/internal/app/store/incidents"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
	"github.com/campushub/campushub/internal/app/system/sanitize"
	"github.com/campushub/campushub/internal/domain/models"
)

type reportRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Urgency     string `json:"urgency"`
	Anonymous   bool   `json:"anonymous"`
}

func validUrgency(u string) bool {
	return u == models.UrgencyLow || u == models.UrgencyMedium || u == models.UrgencyHigh
}

// Report serves POST /incidents. New reports start as pending.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		h.Log.Error("failed to decode incident report", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	description := sanitize.Text(req.Description)
	if description == "" {
		httpjson.Error(w, http.StatusUnprocessableEntity, "description is required")
		return
	}
	if !validUrgency(req.Urgency) {
		httpjson.Error(w, http.StatusUnprocessableEntity, "urgency must be low, medium, or high")
		return
	}

	report, err := h.Store.Create(r.Context(), incidentstore.CreateInput{
		Type:        sanitize.Text(req.Type),
		Description: description,
		Location:    sanitize.Text(req.Location),
		Urgency:     req.Urgency,
		Anonymous:   req.Anonymous,
	})
	if err != nil {
		h.Log.Error("failed to create incident report", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("incidents", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Success("Incident reported",
		"Your report has been submitted and will be reviewed."))

	httpjson.Write(w, http.StatusCreated, report)
}

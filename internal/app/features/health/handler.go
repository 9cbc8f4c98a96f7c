package health

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/campushub/campushub/internal/app/system/httpjson"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status string `json:"status"`
}

// Serve handles GET /health. All state is in-process, so a live
// process is a healthy one.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, healthResponse{Status: "ok"})
}

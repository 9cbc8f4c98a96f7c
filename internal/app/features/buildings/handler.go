// internal/app/features/buildings/handler.go
package buildings

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	buildingstore "github.com/campushub/campushub/internal/app/store/buildings"
	"github.com/campushub/campushub/internal/app/system/httpjson"
)

// Handler holds dependencies for the building endpoints.
type Handler struct {
	Store *buildingstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a buildings Handler.
func NewHandler(store *buildingstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// List serves GET /buildings.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.Store.List(r.Context()))
}

// Get serves GET /buildings/{buildingID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	buildingID := chi.URLParam(r, "buildingID")

	b, err := h.Store.GetByID(r.Context(), buildingID)
	if errors.Is(err, buildingstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "building not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to get building", zap.Error(err), zap.String("building_id", buildingID))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpjson.Write(w, http.StatusOK, b)
}

// internal/app/features/studygroups/list.go
package studygroups

import (
	"net/http"

	"github.com/campushub/campushub/internal/app/system/httpjson"
)

// List serves GET /study-groups.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.Store.List(r.Context()))
}

package alerts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/campushub/campushub/internal/app/features/alerts"
	alertstore "github.com/campushub/campushub/internal/app/store/alerts"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/campushub/campushub/internal/testutil"
)

func TestList(t *testing.T) {
	store := alertstore.New([]models.EmergencyAlert{
		{ID: "alert-1", Title: "Campus Power Outage", Type: models.AlertOther, Severity: models.SeverityWarning},
	})
	h := alerts.NewHandler(store, zap.NewNop())
	router := alerts.Routes(h)

	req := testutil.NewRequest("GET", "/")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var list []models.EmergencyAlert
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(list))
	}
	if list[0].Title != "Campus Power Outage" {
		t.Errorf("Title: got %q", list[0].Title)
	}
}

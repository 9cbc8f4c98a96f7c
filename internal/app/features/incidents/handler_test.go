package incidents_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/campushub/campushub/internal/app/features/incidents"
	incidentstore "github.com/campushub/campushub/internal/app/store/incidents"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/campushub/campushub/internal/testutil"
)

func newTestHandler(seed []models.IncidentReport) (*incidents.Handler, *testutil.NotifyRecorder) {
	rec := &testutil.NotifyRecorder{}
	h := incidents.NewHandler(incidentstore.New(seed), rec, zap.NewNop())
	return h, rec
}

func TestList(t *testing.T) {
	h, _ := newTestHandler([]models.IncidentReport{testutil.SampleIncident()})
	router := incidents.Routes(h)

	req := testutil.NewRequest("GET", "/")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var reports []models.IncidentReport
	if err := json.Unmarshal(rec.Body.Bytes(), &reports); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(reports) != 1 {
		t.Errorf("expected 1 report, got %d", len(reports))
	}
}

func TestReport(t *testing.T) {
	h, notifier := newTestHandler(nil)
	router := incidents.Routes(h)

	body := `{"type":"Safety","description":"Broken glass near the gym entrance.","location":"Recreation Center","urgency":"high","anonymous":true}`
	req := testutil.NewJSONRequest("POST", "/", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var r models.IncidentReport
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if r.Status != models.IncidentPending {
		t.Errorf("Status: got %q, want %q", r.Status, models.IncidentPending)
	}

	if n, ok := notifier.Last(); !ok || n.Title != "Incident reported" {
		t.Errorf("expected Incident reported notification, got %+v", n)
	}
}

func TestReport_EmptyDescription(t *testing.T) {
	h, notifier := newTestHandler(nil)
	router := incidents.Routes(h)

	req := testutil.NewJSONRequest("POST", "/", `{"description":"","urgency":"low"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if notifier.Count() != 0 {
		t.Error("rejected report must not notify")
	}
}

func TestReport_BadUrgency(t *testing.T) {
	h, _ := newTestHandler(nil)
	router := incidents.Routes(h)

	req := testutil.NewJSONRequest("POST", "/", `{"description":"Something happened","urgency":"urgent"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestSetStatus(t *testing.T) {
	h, notifier := newTestHandler([]models.IncidentReport{testutil.SampleIncident()})
	router := incidents.Routes(h)

	req := testutil.NewJSONRequest("POST", "/incident-1/status", `{"status":"reviewing"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var r models.IncidentReport
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if r.Status != models.IncidentReviewing {
		t.Errorf("Status: got %q, want %q", r.Status, models.IncidentReviewing)
	}

	if n, ok := notifier.Last(); !ok || n.Title != "Report updated" {
		t.Errorf("expected Report updated notification, got %+v", n)
	}
}

func TestSetStatus_Backward(t *testing.T) {
	seed := testutil.SampleIncident()
	seed.Status = models.IncidentResolved

	h, notifier := newTestHandler([]models.IncidentReport{seed})
	router := incidents.Routes(h)

	req := testutil.NewJSONRequest("POST", "/incident-1/status", `{"status":"pending"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusConflict)
	}
	if notifier.Count() != 0 {
		t.Error("rejected status change must not notify")
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	h, _ := newTestHandler(nil)
	router := incidents.Routes(h)

	req := testutil.NewJSONRequest("POST", "/missing/status", `{"status":"reviewing"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

package buildings_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/campushub/campushub/internal/app/features/buildings"
	buildingstore "github.com/campushub/campushub/internal/app/store/buildings"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/campushub/campushub/internal/testutil"
)

func newTestHandler() *buildings.Handler {
	store := buildingstore.New([]models.Building{testutil.SampleBuilding()})
	return buildings.NewHandler(store, zap.NewNop())
}

func TestList(t *testing.T) {
	router := buildings.Routes(newTestHandler())

	req := testutil.NewRequest("GET", "/")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var list []models.Building
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 building, got %d", len(list))
	}
}

func TestGet(t *testing.T) {
	router := buildings.Routes(newTestHandler())

	req := testutil.NewRequest("GET", "/building-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var b models.Building
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if b.Name != "Main Library" {
		t.Errorf("Name: got %q, want %q", b.Name, "Main Library")
	}
	if len(b.Floors) != 1 || len(b.Floors[0].StudySpaces) != 1 {
		t.Errorf("expected floors and study spaces in response")
	}
}

func TestGet_NotFound(t *testing.T) {
	router := buildings.Routes(newTestHandler())

	req := testutil.NewRequest("GET", "/missing")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

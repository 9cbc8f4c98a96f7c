package incidentstore_test

import (
	"context"
	"errors"
	"testing"

	incidentstore "github.com/campushub/campushub/internal/app/store/incidents"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/campushub/campushub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	store := incidentstore.New(nil)
	ctx := context.Background()

	r, err := store.Create(ctx, incidentstore.CreateInput{
		Type:        "Safety",
		Description: "Broken glass near the gym entrance.",
		Location:    "Recreation Center",
		Urgency:     models.UrgencyHigh,
		Anonymous:   true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if r.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if r.Status != models.IncidentPending {
		t.Errorf("Status: got %q, want %q", r.Status, models.IncidentPending)
	}
	if r.DateTime.IsZero() {
		t.Error("expected DateTime to be set")
	}
}

func TestStore_Create_InsertsAtFront(t *testing.T) {
	store := incidentstore.New([]models.IncidentReport{testutil.SampleIncident()})
	ctx := context.Background()

	r, err := store.Create(ctx, incidentstore.CreateInput{Description: "New report", Urgency: models.UrgencyLow})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	reports := store.List(ctx)
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].ID != r.ID {
		t.Errorf("new report should be first: got %q, want %q", reports[0].ID, r.ID)
	}
}

func TestStore_SetStatus_Forward(t *testing.T) {
	store := incidentstore.New([]models.IncidentReport{testutil.SampleIncident()})
	ctx := context.Background()

	r, err := store.SetStatus(ctx, "incident-1", models.IncidentReviewing)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if r.Status != models.IncidentReviewing {
		t.Errorf("Status: got %q, want %q", r.Status, models.IncidentReviewing)
	}

	r, err = store.SetStatus(ctx, "incident-1", models.IncidentResolved)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if r.Status != models.IncidentResolved {
		t.Errorf("Status: got %q, want %q", r.Status, models.IncidentResolved)
	}
}

func TestStore_SetStatus_SameStatus(t *testing.T) {
	store := incidentstore.New([]models.IncidentReport{testutil.SampleIncident()})
	ctx := context.Background()

	r, err := store.SetStatus(ctx, "incident-1", models.IncidentPending)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if r.Status != models.IncidentPending {
		t.Errorf("Status: got %q, want %q", r.Status, models.IncidentPending)
	}
}

func TestStore_SetStatus_BackwardRejected(t *testing.T) {
	store := incidentstore.New([]models.IncidentReport{testutil.SampleIncident()})
	ctx := context.Background()

	if _, err := store.SetStatus(ctx, "incident-1", models.IncidentResolved); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	_, err := store.SetStatus(ctx, "incident-1", models.IncidentPending)
	if !errors.Is(err, incidentstore.ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}

	r, _ := store.GetByID(ctx, "incident-1")
	if r.Status != models.IncidentResolved {
		t.Errorf("rejected move must not change state: got %q", r.Status)
	}
}

func TestStore_SetStatus_UnknownStatus(t *testing.T) {
	store := incidentstore.New([]models.IncidentReport{testutil.SampleIncident()})
	ctx := context.Background()

	_, err := store.SetStatus(ctx, "incident-1", "escalated")
	if !errors.Is(err, incidentstore.ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
}

func TestStore_SetStatus_NotFound(t *testing.T) {
	store := incidentstore.New(nil)
	ctx := context.Background()

	_, err := store.SetStatus(ctx, "missing", models.IncidentReviewing)
	if !errors.Is(err, incidentstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

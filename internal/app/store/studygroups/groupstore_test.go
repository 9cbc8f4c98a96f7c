package groupstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	groupstore "github.com/campushub/campushub/internal/app/store/studygroups"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/campushub/campushub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	store := groupstore.New(nil)
	ctx := context.Background()

	in := groupstore.CreateInput{
		Name:            "Linear Algebra Review",
		Description:     "Eigenvalues and eigenvectors before the final.",
		Subject:         "Mathematics",
		Course:          "MATH 204",
		DateTime:        time.Now().UTC().Add(72 * time.Hour),
		Location:        "Main Library, Room 110",
		MaxParticipants: 6,
	}

	g, err := store.Create(ctx, in, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if g.CreatedBy != "user-1" {
		t.Errorf("CreatedBy: got %q, want %q", g.CreatedBy, "user-1")
	}
	if len(g.Members) != 1 || g.Members[0] != "user-1" {
		t.Errorf("Members: got %v, want [user-1]", g.Members)
	}
	if g.CurrentParticipants != 1 {
		t.Errorf("CurrentParticipants: got %d, want 1", g.CurrentParticipants)
	}
}

func TestStore_Create_AppendsAtEnd(t *testing.T) {
	store := groupstore.New([]models.StudyGroup{testutil.SampleGroup()})
	ctx := context.Background()

	g, err := store.Create(ctx, groupstore.CreateInput{Name: "New Group", MaxParticipants: 4}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	groups := store.List(ctx)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[1].ID != g.ID {
		t.Errorf("new group should be last: got %q at end, want %q", groups[1].ID, g.ID)
	}
}

func TestStore_Join(t *testing.T) {
	store := groupstore.New([]models.StudyGroup{testutil.SampleGroup()})
	ctx := context.Background()

	g, err := store.Join(ctx, "group-1", "user-1")
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if g.CurrentParticipants != 3 {
		t.Errorf("CurrentParticipants: got %d, want 3", g.CurrentParticipants)
	}
	if g.CurrentParticipants != len(g.Members) {
		t.Errorf("CurrentParticipants %d != len(Members) %d", g.CurrentParticipants, len(g.Members))
	}
	if g.Members[len(g.Members)-1] != "user-1" {
		t.Errorf("expected user-1 appended to members, got %v", g.Members)
	}
}

func TestStore_Join_AlreadyMember(t *testing.T) {
	store := groupstore.New([]models.StudyGroup{testutil.SampleGroup()})
	ctx := context.Background()

	_, err := store.Join(ctx, "group-1", "user-2")
	if !errors.Is(err, groupstore.ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}

	g, _ := store.GetByID(ctx, "group-1")
	if g.CurrentParticipants != 2 {
		t.Errorf("rejected join must not change state: got %d participants, want 2", g.CurrentParticipants)
	}
}

func TestStore_Join_Full(t *testing.T) {
	store := groupstore.New([]models.StudyGroup{testutil.FullGroup()})
	ctx := context.Background()

	_, err := store.Join(ctx, "group-full", "user-1")
	if !errors.Is(err, groupstore.ErrGroupFull) {
		t.Fatalf("expected ErrGroupFull, got %v", err)
	}

	g, _ := store.GetByID(ctx, "group-full")
	if g.CurrentParticipants != 2 {
		t.Errorf("rejected join must not change state: got %d participants, want 2", g.CurrentParticipants)
	}
}

func TestStore_Join_FullAndAlreadyMember(t *testing.T) {
	// A member of a full group gets the membership error, not the
	// capacity error.
	store := groupstore.New([]models.StudyGroup{testutil.FullGroup()})
	ctx := context.Background()

	_, err := store.Join(ctx, "group-full", "user-7")
	if !errors.Is(err, groupstore.ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestStore_Join_NotFound(t *testing.T) {
	store := groupstore.New(nil)
	ctx := context.Background()

	_, err := store.Join(ctx, "missing", "user-1")
	if !errors.Is(err, groupstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Leave(t *testing.T) {
	store := groupstore.New([]models.StudyGroup{testutil.SampleGroup()})
	ctx := context.Background()

	g, err := store.Leave(ctx, "group-1", "user-3")
	if err != nil {
		t.Fatalf("Leave failed: %v", err)
	}
	if g.CurrentParticipants != 1 {
		t.Errorf("CurrentParticipants: got %d, want 1", g.CurrentParticipants)
	}
	for _, m := range g.Members {
		if m == "user-3" {
			t.Errorf("user-3 still in members: %v", g.Members)
		}
	}
}

func TestStore_Leave_NotMember(t *testing.T) {
	store := groupstore.New([]models.StudyGroup{testutil.SampleGroup()})
	ctx := context.Background()

	_, err := store.Leave(ctx, "group-1", "user-1")
	if !errors.Is(err, groupstore.ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}
}

func TestStore_Leave_NotFound(t *testing.T) {
	store := groupstore.New(nil)
	ctx := context.Background()

	_, err := store.Leave(ctx, "missing", "user-1")
	if !errors.Is(err, groupstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_JoinThenLeave_RoundTrip(t *testing.T) {
	store := groupstore.New([]models.StudyGroup{testutil.SampleGroup()})
	ctx := context.Background()

	before, _ := store.GetByID(ctx, "group-1")

	if _, err := store.Join(ctx, "group-1", "user-1"); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if _, err := store.Leave(ctx, "group-1", "user-1"); err != nil {
		t.Fatalf("Leave failed: %v", err)
	}

	after, _ := store.GetByID(ctx, "group-1")
	if after.CurrentParticipants != before.CurrentParticipants {
		t.Errorf("participants after round trip: got %d, want %d", after.CurrentParticipants, before.CurrentParticipants)
	}
}

func TestStore_List_CopyIsolation(t *testing.T) {
	store := groupstore.New([]models.StudyGroup{testutil.SampleGroup()})
	ctx := context.Background()

	groups := store.List(ctx)
	groups[0].Members[0] = "mutated"

	g, _ := store.GetByID(ctx, "group-1")
	if g.Members[0] == "mutated" {
		t.Error("List must return copies, not aliases of stored slices")
	}
}

// internal/app/store/incidents/incidentstore.go
package incidentstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/domain/models"
)

var (
	ErrNotFound  = errors.New("incident report not found")
	ErrBadStatus = errors.New("invalid incident status")
)

// statusRank orders the review pipeline. Status never moves backward.
var statusRank = map[string]int{
	models.IncidentPending:   0,
	models.IncidentReviewing: 1,
	models.IncidentResolved:  2,
}

// Store owns incident reports, newest first.
type Store struct {
	mu        sync.RWMutex
	incidents []models.IncidentReport
}

// CreateInput carries the caller-supplied fields for a new report.
type CreateInput struct {
	Type        string
	Description string
	Location    string
	Urgency     string
	Anonymous   bool
}

func New(seed []models.IncidentReport) *Store {
	s := &Store{incidents: append([]models.IncidentReport(nil), seed...)}
	return s
}

// List returns all reports, newest first.
func (s *Store) List(ctx context.Context) []models.IncidentReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.IncidentReport(nil), s.incidents...)
}

func (s *Store) GetByID(ctx context.Context, id string) (models.IncidentReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.incidents {
		if r.ID == id {
			return r, nil
		}
	}
	return models.IncidentReport{}, ErrNotFound
}

// Create files a new report as pending and inserts it at the front.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.IncidentReport, error) {
	r := models.IncidentReport{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Description: in.Description,
		Location:    in.Location,
		DateTime:    time.Now().UTC(),
		Status:      models.IncidentPending,
		Urgency:     in.Urgency,
		Anonymous:   in.Anonymous,
	}

	s.mu.Lock()
	s.incidents = append([]models.IncidentReport{r}, s.incidents...)
	s.mu.Unlock()

	return r, nil
}

// SetStatus advances a report along pending → reviewing → resolved.
// Unknown statuses and backward moves are rejected.
func (s *Store) SetStatus(ctx context.Context, id, status string) (models.IncidentReport, error) {
	rank, ok := statusRank[status]
	if !ok {
		return models.IncidentReport{}, ErrBadStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.incidents {
		if s.incidents[i].ID != id {
			continue
		}
		if rank < statusRank[s.incidents[i].Status] {
			return models.IncidentReport{}, ErrBadStatus
		}
		s.incidents[i].Status = status
		return s.incidents[i], nil
	}
	return models.IncidentReport{}, ErrNotFound
}

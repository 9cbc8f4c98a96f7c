// internal/app/store/alerts/alertstore.go
package alertstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/domain/models"
)

// Store owns the emergency-alert list, newest first. The ambient alert
// generator and any future manual publisher both mutate through Add, so
// there is a single write path.
type Store struct {
	mu     sync.RWMutex
	alerts []models.EmergencyAlert
}

// Draft carries the alert fields supplied by a publisher; the store
// assigns the identifier and timestamp.
type Draft struct {
	Title         string
	Description   string
	Type          string
	Severity      string
	AffectedAreas []string
	Instructions  string
}

func New(seed []models.EmergencyAlert) *Store {
	s := &Store{alerts: make([]models.EmergencyAlert, 0, len(seed))}
	for _, a := range seed {
		s.alerts = append(s.alerts, copyAlert(a))
	}
	return s
}

// List returns all alerts, newest first.
func (s *Store) List(ctx context.Context) []models.EmergencyAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.EmergencyAlert, 0, len(s.alerts))
	for _, a := range s.alerts {
		out = append(out, copyAlert(a))
	}
	return out
}

// Count returns the number of active alerts.
func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.alerts)
}

// Add prepends a new alert and returns it with its assigned identifier
// and timestamp.
func (s *Store) Add(ctx context.Context, d Draft) models.EmergencyAlert {
	a := models.EmergencyAlert{
		ID:            uuid.NewString(),
		Title:         d.Title,
		Description:   d.Description,
		Type:          d.Type,
		Severity:      d.Severity,
		DateTime:      time.Now().UTC(),
		AffectedAreas: append([]string(nil), d.AffectedAreas...),
		Instructions:  d.Instructions,
	}

	s.mu.Lock()
	s.alerts = append([]models.EmergencyAlert{a}, s.alerts...)
	s.mu.Unlock()

	return copyAlert(a)
}

func copyAlert(a models.EmergencyAlert) models.EmergencyAlert {
	out := a
	out.AffectedAreas = append([]string(nil), a.AffectedAreas...)
	return out
}

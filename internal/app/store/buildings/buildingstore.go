// internal/app/store/buildings/buildingstore.go
package buildingstore

import (
	"context"
	"errors"
	"sync"

	"github.com/campushub/campushub/internal/domain/models"
)

var ErrNotFound = errors.New("building not found")

// Store holds the building collection. Buildings, floors, and study
// spaces are seeded at startup and read-only afterward. The RWMutex
// leaves room for a live occupancy feed to write later.
type Store struct {
	mu        sync.RWMutex
	buildings []models.Building
}

func New(seed []models.Building) *Store {
	s := &Store{buildings: make([]models.Building, 0, len(seed))}
	for _, b := range seed {
		s.buildings = append(s.buildings, copyBuilding(b))
	}
	return s
}

// List returns all buildings in seed order.
func (s *Store) List(ctx context.Context) []models.Building {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Building, 0, len(s.buildings))
	for _, b := range s.buildings {
		out = append(out, copyBuilding(b))
	}
	return out
}

func (s *Store) GetByID(ctx context.Context, id string) (models.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.buildings {
		if b.ID == id {
			return copyBuilding(b), nil
		}
	}
	return models.Building{}, ErrNotFound
}

// copyBuilding deep-copies a building so callers can never alias stored
// floor or study-space slices.
func copyBuilding(b models.Building) models.Building {
	out := b
	out.Floors = make([]models.Floor, 0, len(b.Floors))
	for _, f := range b.Floors {
		nf := f
		nf.StudySpaces = make([]models.StudySpace, 0, len(f.StudySpaces))
		for _, sp := range f.StudySpaces {
			nsp := sp
			nsp.Amenities = append([]string(nil), sp.Amenities...)
			nf.StudySpaces = append(nf.StudySpaces, nsp)
		}
		out.Floors = append(out.Floors, nf)
	}
	return out
}

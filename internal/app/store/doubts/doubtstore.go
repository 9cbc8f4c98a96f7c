// internal/app/store/doubts/doubtstore.go
package doubtstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/domain/models"
)

var ErrNotFound = errors.New("doubt not found")

// Store owns the Q&A board. New doubts go to the front of the list;
// answers are append-only; Resolved never moves back to false.
type Store struct {
	mu     sync.RWMutex
	doubts []models.Doubt
}

// CreateInput carries the caller-supplied fields for a new doubt.
type CreateInput struct {
	Title       string
	Description string
	Subject     string
	Course      string
	Anonymous   bool
}

func New(seed []models.Doubt) *Store {
	s := &Store{doubts: make([]models.Doubt, 0, len(seed))}
	for _, d := range seed {
		s.doubts = append(s.doubts, copyDoubt(d))
	}
	return s
}

// List returns all doubts, newest first.
func (s *Store) List(ctx context.Context) []models.Doubt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Doubt, 0, len(s.doubts))
	for _, d := range s.doubts {
		out = append(out, copyDoubt(d))
	}
	return out
}

func (s *Store) GetByID(ctx context.Context, id string) (models.Doubt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.doubts {
		if d.ID == id {
			return copyDoubt(d), nil
		}
	}
	return models.Doubt{}, ErrNotFound
}

// Create inserts a new unresolved doubt at the front of the board.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Doubt, error) {
	d := models.Doubt{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Subject:     in.Subject,
		Course:      in.Course,
		CreatedAt:   time.Now().UTC(),
		Anonymous:   in.Anonymous,
		Resolved:    false,
		Answers:     []models.Answer{},
	}

	s.mu.Lock()
	s.doubts = append([]models.Doubt{d}, s.doubts...)
	s.mu.Unlock()

	return copyDoubt(d), nil
}

// AddAnswer appends an answer authored by authorID to the doubt.
func (s *Store) AddAnswer(ctx context.Context, doubtID, content, authorID string) (models.Doubt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(doubtID)
	if i < 0 {
		return models.Doubt{}, ErrNotFound
	}

	a := models.Answer{
		ID:           uuid.NewString(),
		Content:      content,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    authorID,
		IsInstructor: false,
	}
	s.doubts[i].Answers = append(s.doubts[i].Answers, a)
	return copyDoubt(s.doubts[i]), nil
}

// Resolve marks the doubt resolved. Resolving an already-resolved doubt
// succeeds without changing state.
func (s *Store) Resolve(ctx context.Context, doubtID string) (models.Doubt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(doubtID)
	if i < 0 {
		return models.Doubt{}, ErrNotFound
	}
	s.doubts[i].Resolved = true
	return copyDoubt(s.doubts[i]), nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.doubts {
		if s.doubts[i].ID == id {
			return i
		}
	}
	return -1
}

func copyDoubt(d models.Doubt) models.Doubt {
	out := d
	out.Answers = append([]models.Answer(nil), d.Answers...)
	return out
}

// internal/app/store/studygroups/groupstore.go
package groupstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/domain/models"
)

var (
	ErrNotFound      = errors.New("study group not found")
	ErrGroupFull     = errors.New("study group is full")
	ErrAlreadyMember = errors.New("user is already a member of this study group")
	ErrNotMember     = errors.New("user is not a member of this study group")
)

// Store owns the study-group collection. Every mutation runs under the
// write lock, so CurrentParticipants == len(Members) holds at all
// observation points.
type Store struct {
	mu     sync.RWMutex
	groups []models.StudyGroup
}

// CreateInput carries the caller-supplied fields for a new group.
type CreateInput struct {
	Name            string
	Description     string
	Subject         string
	Course          string
	DateTime        time.Time
	Location        string
	MaxParticipants int
}

func New(seed []models.StudyGroup) *Store {
	s := &Store{groups: make([]models.StudyGroup, 0, len(seed))}
	for _, g := range seed {
		s.groups = append(s.groups, copyGroup(g))
	}
	return s
}

// List returns all groups in creation order.
func (s *Store) List(ctx context.Context) []models.StudyGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.StudyGroup, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, copyGroup(g))
	}
	return out
}

func (s *Store) GetByID(ctx context.Context, id string) (models.StudyGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.groups {
		if g.ID == id {
			return copyGroup(g), nil
		}
	}
	return models.StudyGroup{}, ErrNotFound
}

// Create adds a group with the creator as its first member.
func (s *Store) Create(ctx context.Context, in CreateInput, creatorID string) (models.StudyGroup, error) {
	g := models.StudyGroup{
		ID:                  uuid.NewString(),
		Name:                in.Name,
		Description:         in.Description,
		Subject:             in.Subject,
		Course:              in.Course,
		DateTime:            in.DateTime,
		Location:            in.Location,
		MaxParticipants:     in.MaxParticipants,
		CurrentParticipants: 1,
		CreatedBy:           creatorID,
		Members:             []string{creatorID},
	}

	s.mu.Lock()
	s.groups = append(s.groups, g)
	s.mu.Unlock()

	return copyGroup(g), nil
}

// Join adds userID to the group. The group must exist, have room, and
// not already contain the user; state is untouched otherwise.
func (s *Store) Join(ctx context.Context, groupID, userID string) (models.StudyGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(groupID)
	if i < 0 {
		return models.StudyGroup{}, ErrNotFound
	}
	g := &s.groups[i]
	if isMember(g.Members, userID) {
		return models.StudyGroup{}, ErrAlreadyMember
	}
	if g.CurrentParticipants >= g.MaxParticipants {
		return models.StudyGroup{}, ErrGroupFull
	}

	g.Members = append(g.Members, userID)
	g.CurrentParticipants = len(g.Members)
	return copyGroup(*g), nil
}

// Leave removes userID from the group it is a member of.
func (s *Store) Leave(ctx context.Context, groupID, userID string) (models.StudyGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(groupID)
	if i < 0 {
		return models.StudyGroup{}, ErrNotFound
	}
	g := &s.groups[i]
	if !isMember(g.Members, userID) {
		return models.StudyGroup{}, ErrNotMember
	}

	members := make([]string, 0, len(g.Members)-1)
	for _, m := range g.Members {
		if m != userID {
			members = append(members, m)
		}
	}
	g.Members = members
	g.CurrentParticipants = len(g.Members)
	return copyGroup(*g), nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.groups {
		if s.groups[i].ID == id {
			return i
		}
	}
	return -1
}

func isMember(members []string, userID string) bool {
	for _, m := range members {
		if m == userID {
			return true
		}
	}
	return false
}

func copyGroup(g models.StudyGroup) models.StudyGroup {
	out := g
	out.Members = append([]string(nil), g.Members...)
	return out
}

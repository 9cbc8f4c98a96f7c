// internal/app/store/books/bookstore.go
package bookstore

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/campushub/campushub/internal/domain/models"
)

var (
	ErrNotFound      = errors.New("book not found")
	ErrUnavailable   = errors.New("book is not available")
	ErrNotCheckedOut = errors.New("book is not checked out")
)

// Store owns the library catalog. A book is available exactly when it
// has no due date; Reserve and Return keep the pair in step.
type Store struct {
	mu    sync.RWMutex
	books []models.LibraryBook
}

func New(seed []models.LibraryBook) *Store {
	s := &Store{books: make([]models.LibraryBook, 0, len(seed))}
	for _, b := range seed {
		s.books = append(s.books, copyBook(b))
	}
	return s
}

// List returns the catalog in seed order.
func (s *Store) List(ctx context.Context) []models.LibraryBook {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.LibraryBook, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, copyBook(b))
	}
	return out
}

func (s *Store) GetByID(ctx context.Context, id string) (models.LibraryBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.ID == id {
			return copyBook(b), nil
		}
	}
	return models.LibraryBook{}, ErrNotFound
}

// Search matches the folded query as a substring of title, author, or
// category, preserving catalog order. An empty query returns no results
// rather than the whole catalog.
func (s *Store) Search(ctx context.Context, query string) []models.LibraryBook {
	if query == "" {
		return nil
	}
	q := text.Fold(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.LibraryBook
	for _, b := range s.books {
		if strings.Contains(text.Fold(b.Title), q) ||
			strings.Contains(text.Fold(b.Author), q) ||
			strings.Contains(text.Fold(b.Category), q) {
			out = append(out, copyBook(b))
		}
	}
	return out
}

// Reserve checks the book out until due. The book must exist and be
// available; state is untouched otherwise.
func (s *Store) Reserve(ctx context.Context, id string, due time.Time) (models.LibraryBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.LibraryBook{}, ErrNotFound
	}
	b := &s.books[i]
	if !b.IsAvailable {
		return models.LibraryBook{}, ErrUnavailable
	}

	d := due
	b.IsAvailable = false
	b.DueDate = &d
	return copyBook(*b), nil
}

// Return makes a checked-out book available again and clears its due
// date.
func (s *Store) Return(ctx context.Context, id string) (models.LibraryBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.LibraryBook{}, ErrNotFound
	}
	b := &s.books[i]
	if b.IsAvailable {
		return models.LibraryBook{}, ErrNotCheckedOut
	}

	b.IsAvailable = true
	b.DueDate = nil
	return copyBook(*b), nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}

func copyBook(b models.LibraryBook) models.LibraryBook {
	out := b
	if b.DueDate != nil {
		d := *b.DueDate
		out.DueDate = &d
	}
	return out
}

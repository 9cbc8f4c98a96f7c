// internal/app/features/library/handler.go
package library

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	bookstore "github.com/campushub/campushub/internal/app/store/books"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/notify"
	"github.com/campushub/campushub/internal/domain/models"
)

// Handler holds dependencies for the library endpoints.
type Handler struct {
	Store      *bookstore.Store
	Notify     notify.Notifier
	Log        *zap.Logger
	LoanPeriod time.Duration
}

// NewHandler constructs a library Handler. loanPeriod is how long a
// reservation checks a book out for.
func NewHandler(store *bookstore.Store, notifier notify.Notifier, logger *zap.Logger, loanPeriod time.Duration) *Handler {
	return &Handler{Store: store, Notify: notifier, Log: logger, LoanPeriod: loanPeriod}
}

// ListBooks serves GET /library/books.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.Store.List(r.Context()))
}

// SearchBooks serves GET /library/books/search?q=. An empty query is a
// defined case and returns an empty list, not an error.
func (h *Handler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	matches := h.Store.Search(r.Context(), q)
	if matches == nil {
		matches = []models.LibraryBook{}
	}
	httpjson.Write(w, http.StatusOK, matches)
}

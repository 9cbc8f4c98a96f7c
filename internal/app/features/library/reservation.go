// internal/app/features/library/reservation.go
package library

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	bookstore "github.com/campushub/campushub/internal/app/store/books"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
)

// Reserve serves POST /library/books/{bookID}/reserve. An unavailable
// book rejects the request and keeps its existing due date.
func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	due := time.Now().UTC().Add(h.LoanPeriod)
	book, err := h.Store.Reserve(r.Context(), bookID, due)
	switch {
	case errors.Is(err, bookstore.ErrNotFound):
		metrics.ObserveOperation("library", metrics.OutcomeNotFound)
		httpjson.Error(w, http.StatusNotFound, "book not found")
		return
	case errors.Is(err, bookstore.ErrUnavailable):
		metrics.ObserveOperation("library", metrics.OutcomeRejected)
		httpjson.Error(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Log.Error("failed to reserve book", zap.Error(err), zap.String("book_id", bookID))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("library", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Success("Book reserved",
		fmt.Sprintf("%q has been reserved for you.", book.Title)))

	httpjson.Write(w, http.StatusOK, book)
}

// Return serves POST /library/books/{bookID}/return.
func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	book, err := h.Store.Return(r.Context(), bookID)
	switch {
	case errors.Is(err, bookstore.ErrNotFound):
		metrics.ObserveOperation("library", metrics.OutcomeNotFound)
		httpjson.Error(w, http.StatusNotFound, "book not found")
		return
	case errors.Is(err, bookstore.ErrNotCheckedOut):
		metrics.ObserveOperation("library", metrics.OutcomeRejected)
		httpjson.Error(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Log.Error("failed to return book", zap.Error(err), zap.String("book_id", bookID))
		httpjson.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveOperation("library", metrics.OutcomeOK)
	h.Notify.Notify(r.Context(), notify.Success("Book returned",
		fmt.Sprintf("%q has been returned successfully.", book.Title)))

	httpjson.Write(w, http.StatusOK, book)
}

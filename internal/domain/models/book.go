// internal/domain/models/book.go
package models

import "time"

// LibraryBook is a catalogued title with reservation state.
//
// IsAvailable and DueDate move together: a book is available exactly
// when it has no due date.
type LibraryBook struct {
	ID          string     `json:"id"`
	RFIDTag     string     `json:"rfid_tag"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	ISBN        string     `json:"isbn"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	IsAvailable bool       `json:"is_available"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
}

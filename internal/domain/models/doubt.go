// internal/domain/models/doubt.go
package models

import "time"

// Doubt is a question posted to the Q&A board.
//
// Answers are append-only; Resolved only ever moves false→true.
type Doubt struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Course      string    `json:"course"`
	CreatedAt   time.Time `json:"created_at"`
	Anonymous   bool      `json:"anonymous"`
	Resolved    bool      `json:"resolved"`
	Answers     []Answer  `json:"answers"`
}

// Answer is immutable once attached to a doubt.
type Answer struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by"`
	IsInstructor bool      `json:"is_instructor"`
}

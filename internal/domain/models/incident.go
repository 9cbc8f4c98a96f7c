// internal/domain/models/incident.go
package models

import "time"

// Incident report statuses, in review order.
const (
	IncidentPending   = "pending"
	IncidentReviewing = "reviewing"
	IncidentResolved  = "resolved"
)

// Incident urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// IncidentReport is a campus safety or maintenance report.
type IncidentReport struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"date_time"`
	Status      string    `json:"status"`
	Urgency     string    `json:"urgency"`
	Anonymous   bool      `json:"anonymous"`
}

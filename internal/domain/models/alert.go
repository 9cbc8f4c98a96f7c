// internal/domain/models/alert.go
package models

import "time"

// Emergency alert categories.
const (
	AlertWeather  = "weather"
	AlertSecurity = "security"
	AlertHealth   = "health"
	AlertOther    = "other"
)

// Emergency alert severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// EmergencyAlert is a campus-wide advisory. The active list is kept
// newest-first.
type EmergencyAlert struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	Severity      string    `json:"severity"`
	DateTime      time.Time `json:"date_time"`
	AffectedAreas []string  `json:"affected_areas"`
	Instructions  string    `json:"instructions"`
}

// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging level, timeouts). AppConfig is everything specific to the
// portal itself.
type AppConfig struct {
	// Fixed session identity. The portal runs without authentication;
	// every operation acts as this user.
	UserID   string
	UserName string

	// Ambient emergency-alert simulation
	AlertInterval    time.Duration // tick interval between trials
	AlertProbability float64       // per-tick chance of an alert, in [0, 1]

	// Library reservation
	LoanPeriod time.Duration // how long a reserved book is checked out

	// Notification feed retention
	NotificationFeedSize int
}

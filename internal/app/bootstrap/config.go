// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for CampusHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: user_id, alert_interval, etc.
//   - Environment variables: CAMPUSHUB_USER_ID, CAMPUSHUB_ALERT_INTERVAL, etc.
//   - Command-line flags: --user_id, --alert_interval, etc.
var appConfigKeys = []config.AppKey{
	{Name: "user_id", Default: "user-1", Desc: "Identifier of the fixed portal user"},
	{Name: "user_name", Default: "John Student", Desc: "Display name of the fixed portal user"},

	// Emergency alert simulation
	{Name: "alert_interval", Default: "30s", Desc: "Interval between emergency-alert trials (e.g., 30s, 1m)"},
	{Name: "alert_probability", Default: "0.01", Desc: "Per-tick probability of a simulated emergency alert (0..1)"},

	// Library
	{Name: "loan_period", Default: "336h", Desc: "Book reservation loan period (default 14 days)"},

	// Notifications
	{Name: "notification_feed_size", Default: 50, Desc: "How many recent notifications the feed retains"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CAMPUSHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	probability, err := strconv.ParseFloat(appValues.String("alert_probability"), 64)
	if err != nil {
		return nil, AppConfig{}, fmt.Errorf("invalid alert_probability: %w", err)
	}

	appCfg := AppConfig{
		UserID:   appValues.String("user_id"),
		UserName: appValues.String("user_name"),

		AlertInterval:    appValues.Duration("alert_interval", 30*time.Second),
		AlertProbability: probability,

		LoanPeriod: appValues.Duration("loan_period", 14*24*time.Hour),

		NotificationFeedSize: appValues.Int("notification_feed_size"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The portal has no database to misconfigure; what it does have is a
// contract that the fixed identity and the alert simulation parameters
// are sane before anything starts.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.UserID == "" {
		return fmt.Errorf("user_id must not be empty")
	}
	if appCfg.AlertProbability < 0 || appCfg.AlertProbability > 1 {
		return fmt.Errorf("alert_probability must be between 0 and 1, got %v", appCfg.AlertProbability)
	}
	if appCfg.AlertInterval <= 0 {
		return fmt.Errorf("alert_interval must be positive, got %v", appCfg.AlertInterval)
	}
	if appCfg.LoanPeriod <= 0 {
		return fmt.Errorf("loan_period must be positive, got %v", appCfg.LoanPeriod)
	}
	if appCfg.NotificationFeedSize < 1 {
		return fmt.Errorf("notification_feed_size must be at least 1, got %d", appCfg.NotificationFeedSize)
	}
	return nil
}

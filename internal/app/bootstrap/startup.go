// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/campushub/campushub/internal/app/system/metrics"
)

// Startup runs one-time application initialization after the backends
// are built, but before the HTTP handler is constructed. CampusHub
// primes the alert gauge from the seeded data and starts the
// emergency-alert generator.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	metrics.ActiveAlerts.Set(float64(deps.Alerts.Count(ctx)))
	deps.AlertWorker.Start()
	return nil
}

// internal/app/system/workers/alertgen.go
package workers

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	alertstore "github.com/campushub/campushub/internal/app/store/alerts"
	"github.com/campushub/campushub/internal/app/system/metrics"
	"github.com/campushub/campushub/internal/app/system/notify"
	"github.com/campushub/campushub/internal/domain/models"
)

// alertBannerDuration is the extended on-screen time the presentation
// layer gives emergency banners.
const alertBannerDuration = 10 * time.Second

// weatherAdvisory is the synthesized alert template.
var weatherAdvisory = alertstore.Draft{
	Title:         "Weather Advisory",
	Description:   "Heavy rain expected in the next few hours. Be prepared for potential flooding in low-lying areas.",
	Type:          models.AlertWeather,
	Severity:      models.SeverityWarning,
	AffectedAreas: []string{"North Campus", "Student Housing"},
	Instructions:  "Stay indoors if possible. Avoid basement areas.",
}

// AlertGenerator is a background worker that simulates campus emergency
// alerts. On each tick it draws a Bernoulli trial and, on success,
// publishes the weather advisory through the alert store's normal write
// path and emits a warning notification.
type AlertGenerator struct {
	alerts      *alertstore.Store
	notifier    notify.Notifier
	log         *zap.Logger
	interval    time.Duration
	probability float64
	stopCh      chan struct{}
	wg          sync.WaitGroup
}

// NewAlertGenerator creates the worker.
//
// Parameters:
//   - alerts: the emergency-alert store
//   - notifier: sink for the warning notification
//   - logger: zap logger
//   - interval: tick interval (e.g., 30 seconds)
//   - probability: per-tick chance of an alert, in [0, 1]
func NewAlertGenerator(alerts *alertstore.Store, notifier notify.Notifier, logger *zap.Logger, interval time.Duration, probability float64) *AlertGenerator {
	return &AlertGenerator{
		alerts:      alerts,
		notifier:    notifier,
		log:         logger,
		interval:    interval,
		probability: probability,
		stopCh:      make(chan struct{}),
	}
}

// Start begins the background alert loop.
func (w *AlertGenerator) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("alert generator started",
		zap.Duration("interval", w.interval),
		zap.Float64("probability", w.probability))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *AlertGenerator) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("alert generator stopped")
}

func (w *AlertGenerator) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *AlertGenerator) tick() {
	if rand.Float64() >= w.probability {
		return
	}
	w.emit()
}

func (w *AlertGenerator) emit() {
	ctx := context.Background()

	alert := w.alerts.Add(ctx, weatherAdvisory)
	metrics.ActiveAlerts.Set(float64(w.alerts.Count(ctx)))
	metrics.ObserveOperation("alerts", metrics.OutcomeOK)

	w.notifier.Notify(ctx, notify.Warning(alert.Title, alert.Description, alertBannerDuration))
	w.log.Info("emergency alert published",
		zap.String("alert_id", alert.ID),
		zap.String("severity", alert.Severity))
}

// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	alertstore "github.com/campushub/campushub/internal/app/store/alerts"
	bookstore "github.com/campushub/campushub/internal/app/store/books"
	buildingstore "github.com/campushub/campushub/internal/app/store/buildings"
	doubtstore "github.com/campushub/campushub/internal/app/store/doubts"
	incidentstore "github.com/campushub/campushub/internal/app/store/incidents"
	groupstore "github.com/campushub/campushub/internal/app/store/studygroups"
	vendorstore "github.com/campushub/campushub/internal/app/store/vendors"
	"github.com/campushub/campushub/internal/app/system/notify"
	"github.com/campushub/campushub/internal/app/system/workers"
)

// ConnectDB builds the app's backends. CampusHub keeps all state in
// process memory, so "connecting" means constructing the seeded stores
// and the notification sinks.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	feed := notify.NewFeed(appCfg.NotificationFeedSize)
	notifier := notify.Multi{notify.NewLogSink(logger), feed}

	buildings := seedBuildings()
	groups := seedStudyGroups()
	doubts := seedDoubts()
	vendors := seedVendors()
	incidents := seedIncidents()
	books := seedBooks()

	alerts := alertstore.New(seedAlerts())

	deps := Deps{
		Buildings: buildingstore.New(buildings),
		Groups:    groupstore.New(groups),
		Doubts:    doubtstore.New(doubts),
		Vendors:   vendorstore.New(vendors),
		Incidents: incidentstore.New(incidents),
		Alerts:    alerts,
		Books:     bookstore.New(books),

		Feed:     feed,
		Notifier: notifier,

		AlertWorker: workers.NewAlertGenerator(alerts, notifier, logger, appCfg.AlertInterval, appCfg.AlertProbability),
	}

	logger.Info("in-memory stores seeded",
		zap.Int("buildings", len(buildings)),
		zap.Int("study_groups", len(groups)),
		zap.Int("doubts", len(doubts)),
		zap.Int("vendors", len(vendors)),
		zap.Int("incidents", len(incidents)),
		zap.Int("books", len(books)))

	return deps, nil
}

// EnsureSchema is a no-op; the in-memory stores carry no schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}

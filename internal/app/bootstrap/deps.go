// internal/app/bootstrap/deps.go
package bootstrap

import (
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

// Deps holds the portal's backends: the in-memory domain stores, the
// notification sinks, and the ambient alert worker. There is no
// database; every collection lives for exactly one process lifetime.
type Deps struct {
	Buildings *buildingstore.Store
	Groups    *groupstore.Store
	Doubts    *doubtstore.Store
	Vendors   *vendorstore.Store
	Incidents *incidentstore.Store
	Alerts    *alertstore.Store
	Books     *bookstore.Store

	Feed     *notify.Feed
	Notifier notify.Notifier

	AlertWorker *workers.AlertGenerator
}

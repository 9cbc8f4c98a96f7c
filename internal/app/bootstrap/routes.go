// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	alertsfeature "github.com/campushub/campushub/internal/app/features/alerts"
	buildingsfeature "github.com/campushub/campushub/internal/app/features/buildings"
	doubtsfeature "github.com/campushub/campushub/internal/app/features/doubts"
	foodfeature "github.com/campushub/campushub/internal/app/features/food"
	healthfeature "github.com/campushub/campushub/internal/app/features/health"
	incidentsfeature "github.com/campushub/campushub/internal/app/features/incidents"
	libraryfeature "github.com/campushub/campushub/internal/app/features/library"
	notificationsfeature "github.com/campushub/campushub/internal/app/features/notifications"
	studygroupsfeature "github.com/campushub/campushub/internal/app/features/studygroups"
	"github.com/campushub/campushub/internal/app/system/identity"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and any Startup
// hooks have completed. CampusHub applies the fixed-identity middleware
// globally and mounts one feature router per campus service.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Every request acts as the configured portal user.
	r.Use(identity.Middleware(identity.User{ID: appCfg.UserID, Name: appCfg.UserName}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Occupancy and study spaces
	buildingsHandler := buildingsfeature.NewHandler(deps.Buildings, logger)
	r.Mount("/buildings", buildingsfeature.Routes(buildingsHandler))

	// Study group creation and membership
	groupsHandler := studygroupsfeature.NewHandler(deps.Groups, deps.Notifier, logger)
	r.Mount("/study-groups", studygroupsfeature.Routes(groupsHandler))

	// Anonymous Q&A board
	doubtsHandler := doubtsfeature.NewHandler(deps.Doubts, deps.Notifier, logger)
	r.Mount("/doubts", doubtsfeature.Routes(doubtsHandler))

	// Food vendors and ordering
	foodHandler := foodfeature.NewHandler(deps.Vendors, deps.Notifier, logger)
	r.Mount("/food", foodfeature.Routes(foodHandler))

	// Incident reporting
	incidentsHandler := incidentsfeature.NewHandler(deps.Incidents, deps.Notifier, logger)
	r.Mount("/incidents", incidentsfeature.Routes(incidentsHandler))

	// Emergency alerts (read-only; the generator worker writes them)
	alertsHandler := alertsfeature.NewHandler(deps.Alerts, logger)
	r.Mount("/alerts", alertsfeature.Routes(alertsHandler))

	// Library catalog and reservations
	libraryHandler := libraryfeature.NewHandler(deps.Books, deps.Notifier, logger, appCfg.LoanPeriod)
	r.Mount("/library", libraryfeature.Routes(libraryHandler))

	// Recent operation notifications
	notificationsHandler := notificationsfeature.NewHandler(deps.Feed, logger)
	r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

	return r, nil
}

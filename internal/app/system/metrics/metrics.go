// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation outcomes used as counter labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeNotFound = "not_found"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushub_operations_total",
		Help: "Domain operations by feature and outcome.",
	}, []string{"feature", "outcome"})

	// ActiveAlerts tracks the size of the emergency-alert list.
	ActiveAlerts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campushub_active_alerts",
		Help: "Number of emergency alerts currently on the active list.",
	})
)

// ObserveOperation records one domain operation.
func ObserveOperation(feature, outcome string) {
	operationsTotal.WithLabelValues(feature, outcome).Inc()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the bot's collectors.
type Metrics struct {
	// Notifications consumed from the gateway (kind, outcome: ok/error).
	NotificationsTotal *prometheus.CounterVec

	// Role operations the sync engine executed (action).
	RoleOperationsTotal *prometheus.CounterVec
}

// New creates the metrics and registers them on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics on the given registry.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rolesync_notifications_total",
				Help: "Total number of platform notifications handled",
			},
			[]string{"kind", "outcome"},
		),
		RoleOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rolesync_role_operations_total",
				Help: "Total number of role operations executed",
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(m.NotificationsTotal, m.RoleOperationsTotal)
	return m
}

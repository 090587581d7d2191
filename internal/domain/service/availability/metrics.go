package availability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"travel_console/internal/domain/entity"
)

const metricsNamespace = "travel_console"

// Metrics counts probes and lookups. A nil *Metrics records nothing.
type Metrics struct {
	probes  *prometheus.CounterVec
	lookups *prometheus.CounterVec
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		probes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "availability",
			Name:      "probes_total",
			Help:      "Requests sent to availability routes of the data service.",
		}, []string{"outcome"}),
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "availability",
			Name:      "lookups_total",
			Help:      "Availability lookups by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) observeProbe(o outcome) {
	if m == nil {
		return
	}

	m.probes.WithLabelValues(o.String()).Inc()
}

func (m *Metrics) observeLookup(reason entity.FailureReason) {
	if m == nil {
		return
	}

	m.lookups.WithLabelValues(reason.String()).Inc()
}

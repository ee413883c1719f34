package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics ...
type Metrics struct {
	operations *prometheus.CounterVec
}

// NewMetrics creates and registers ledger metrics
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crowdfund",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Number of ledger operations by operation and result",
		}, []string{"operation", "result"}),
	}
	reg.MustRegister(m.operations)
	return m
}

func (m *Metrics) observe(operation string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, ErrorKind(err)).Inc()
}

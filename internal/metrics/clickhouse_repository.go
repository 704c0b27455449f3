package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockreader7000",
		Subsystem: "clickhouse_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "network", "status"})
	clickhouseRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockreader7000",
		Subsystem: "clickhouse_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "network", "status"})
)

// ClickhouseRepository tracks metrics for ClickHouse repository operations.
type ClickhouseRepository struct {
	network string
}

// NewClickhouseRepository creates a ClickhouseRepository metrics collector.
func NewClickhouseRepository(network string) *ClickhouseRepository {
	if network == "" {
		network = "unknown"
	}
	return &ClickhouseRepository{network: network}
}

// Observe records duration and status of a repository operation.
func (m ClickhouseRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	clickhouseRepositoryRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	clickhouseRepositoryRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

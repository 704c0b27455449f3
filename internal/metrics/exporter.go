package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exporterFetchRangeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockreader7000",
		Subsystem: "chain_exporter",
		Name:      "fetch_range_total",
		Help:      "Count of attempts to determine the next height range to export.",
	}, []string{"network", "status"})
	exporterFetchRangeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockreader7000",
		Subsystem: "chain_exporter",
		Name:      "fetch_range_duration_seconds",
		Help:      "Duration of determining the next height range to export.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	exporterExportBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockreader7000",
		Subsystem: "chain_exporter",
		Name:      "export_batch_total",
		Help:      "Count of exported batches.",
	}, []string{"network", "status"})
	exporterExportBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockreader7000",
		Subsystem: "chain_exporter",
		Name:      "export_batch_duration_seconds",
		Help:      "Duration of exporting a batch of blocks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	exporterExportBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockreader7000",
		Subsystem: "chain_exporter",
		Name:      "export_batch_size",
		Help:      "Number of blocks exported per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})
	exporterExportedHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockreader7000",
		Subsystem: "chain_exporter",
		Name:      "exported_height",
		Help:      "Highest contiguously exported block height.",
	}, []string{"network"})
)

// Exporter tracks metrics for the ClickHouse chain export pipeline.
type Exporter struct {
	network string
}

// NewExporter constructs an Exporter metrics collector.
func NewExporter(network string) *Exporter {
	if network == "" {
		network = "unknown"
	}
	return &Exporter{network: network}
}

// ObserveFetchRange records an attempt to compute the resume range.
func (m Exporter) ObserveFetchRange(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	exporterFetchRangeTotal.WithLabelValues(m.network, status).Inc()
	exporterFetchRangeDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
}

// ObserveExportBatch records exporting one batch of blocks.
func (m Exporter) ObserveExportBatch(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	exporterExportBatchTotal.WithLabelValues(m.network, status).Inc()
	exporterExportBatchDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
	exporterExportBatchSize.WithLabelValues(m.network).Observe(float64(blocks))
}

// SetExportedHeight publishes the highest contiguously exported height.
func (m Exporter) SetExportedHeight(height int32) {
	exporterExportedHeight.WithLabelValues(m.network).Set(float64(height))
}

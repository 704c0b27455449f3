// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	readerRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockreader7000",
		Subsystem: "reader",
		Name:      "refresh_total",
		Help:      "Count of snapshot refresh attempts.",
	}, []string{"network", "status"})
	readerRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockreader7000",
		Subsystem: "reader",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of snapshot refresh attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	readerReadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockreader7000",
		Subsystem: "reader",
		Name:      "reads_total",
		Help:      "Count of block and undo reads.",
	}, []string{"operation", "network", "status"})
	readerReadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockreader7000",
		Subsystem: "reader",
		Name:      "read_duration_seconds",
		Help:      "Duration of block and undo reads.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	readerHeaderHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockreader7000",
		Subsystem: "reader",
		Name:      "header_height",
		Help:      "Maximum header height in the current snapshot.",
	}, []string{"network"})
	readerChainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockreader7000",
		Subsystem: "reader",
		Name:      "chain_height",
		Help:      "Validated tip height in the current snapshot.",
	}, []string{"network"})
)

// Reader tracks metrics for the block reader facade.
type Reader struct {
	network string
}

// NewReader constructs a metrics collector for one reader instance.
func NewReader(network string) *Reader {
	if network == "" {
		network = "unknown"
	}
	return &Reader{network: network}
}

// ObserveRefresh records a snapshot rebuild outcome and duration.
func (m Reader) ObserveRefresh(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	readerRefreshTotal.WithLabelValues(m.network, status).Inc()
	readerRefreshDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveReadBlock records a full-block read outcome and duration.
func (m Reader) ObserveReadBlock(err error, started time.Time) {
	m.observeRead("read_block", err, started)
}

// ObserveReadUndo records an undo-data read outcome and duration.
func (m Reader) ObserveReadUndo(err error, started time.Time) {
	m.observeRead("read_undo", err, started)
}

func (m Reader) observeRead(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	readerReadsTotal.WithLabelValues(operation, m.network, status).Inc()
	readerReadDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

// SetHeights publishes the snapshot heights after a successful refresh.
func (m Reader) SetHeights(headerHeight, chainHeight int32) {
	readerHeaderHeight.WithLabelValues(m.network).Set(float64(headerHeight))
	readerChainHeight.WithLabelValues(m.network).Set(float64(chainHeight))
}

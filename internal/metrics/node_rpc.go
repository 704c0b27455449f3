package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockreader7000",
		Subsystem: "node_rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "network", "status"})
	nodeRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockreader7000",
		Subsystem: "node_rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeRPC observes outbound node RPC calls for a single network.
type NodeRPC struct {
	network string
}

func NewNodeRPC(network string) *NodeRPC {
	return &NodeRPC{network: network}
}

func (m NodeRPC) Observe(operation string, err error, started time.Time) {
	ObserveNodeRPC(operation, m.network, err, started)
}

// ObserveNodeRPC records a single node RPC call outcome and duration.
func ObserveNodeRPC(operation, network string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if network == "" {
		network = "unknown"
	}

	nodeRPCRequestsTotal.WithLabelValues(operation, network, status).Inc()
	nodeRPCRequestDuration.WithLabelValues(operation, network, status).Observe(time.Since(started).Seconds())
}

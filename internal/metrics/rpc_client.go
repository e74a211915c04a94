package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hodlscope",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of btcd node RPC operations.",
	}, []string{"operation", "node", "status"})
	nodeRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hodlscope",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of btcd node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "node", "status"})
)

// RPCClient tracks metrics for RPC calls to an address-indexed node.
type RPCClient struct {
	node string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(node string) *RPCClient {
	if node == "" {
		node = "unknown"
	}
	return &RPCClient{node: node}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	nodeRPCRequestsTotal.WithLabelValues(operation, m.node, status).Inc()
	nodeRPCRequestDuration.WithLabelValues(operation, m.node, status).Observe(time.Since(started).Seconds())
}

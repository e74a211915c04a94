package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hodlscope",
		Subsystem: "provider_client",
		Name:      "operations_total",
		Help:      "Count of upstream indexer operations.",
	}, []string{"operation", "provider", "status"})
	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hodlscope",
		Subsystem: "provider_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of upstream indexer operations.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 8, 10, 12, 15},
	}, []string{"operation", "provider", "status"})
)

// ProviderClient tracks metrics for calls made to one upstream indexer.
type ProviderClient struct {
	provider string
}

// NewProviderClient constructs a metrics collector for a provider client.
func NewProviderClient(provider string) *ProviderClient {
	if provider == "" {
		provider = "unknown"
	}
	return &ProviderClient{provider: provider}
}

// Observe records a single upstream call outcome and duration.
func (m ProviderClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	providerRequestsTotal.WithLabelValues(operation, m.provider, status).Inc()
	providerRequestDuration.WithLabelValues(operation, m.provider, status).Observe(time.Since(started).Seconds())
}

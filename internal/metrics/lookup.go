package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hodlscope",
		Subsystem: "lookup",
		Name:      "requests_total",
		Help:      "Count of wallet lookups by outcome.",
	}, []string{"outcome"})

	lookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hodlscope",
		Subsystem: "lookup",
		Name:      "request_duration_seconds",
		Help:      "Duration of wallet lookups.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 40, 60},
	}, []string{"outcome"})

	lookupAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hodlscope",
		Subsystem: "lookup",
		Name:      "fallback_attempts_total",
		Help:      "Count of provider attempts per capability.",
	}, []string{"capability", "provider", "status"})

	lookupWalkPages = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hodlscope",
		Subsystem: "lookup",
		Name:      "history_walk_pages",
		Help:      "Number of older pages fetched per history walk.",
		Buckets:   prometheus.LinearBuckets(0, 1, 16),
	}, []string{"provider", "result"})
)

// Lookup tracks metrics for the wallet history engine.
type Lookup struct{}

// NewLookup constructs a Lookup metrics collector.
func NewLookup() *Lookup {
	return &Lookup{}
}

// ObserveLookup records the outcome of a whole lookup.
func (m Lookup) ObserveLookup(outcome string, started time.Time) {
	if outcome == "" {
		outcome = "unknown"
	}
	lookupTotal.WithLabelValues(outcome).Inc()
	lookupDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveAttempt records one provider attempt for a capability.
func (m Lookup) ObserveAttempt(capability, provider string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	lookupAttemptsTotal.WithLabelValues(capability, provider, status).Inc()
}

// ObserveWalk records how many older pages a history walk needed.
func (m Lookup) ObserveWalk(provider string, pages int, approximate bool) {
	result := "exact"
	if approximate {
		result = "approximate"
	}
	lookupWalkPages.WithLabelValues(provider, result).Observe(float64(pages))
}

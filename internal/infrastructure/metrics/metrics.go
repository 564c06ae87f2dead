// Package metrics exports fetch attempt counters and latencies to Prometheus.
package metrics

import (
	"context"

	"github.com/alimikegami/point-of-sales/storefront-service/internal/fetcher"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// FetchObserver records every candidate attempt made by the fetcher.
type FetchObserver struct {
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewFetchObserver registers its collectors with reg. Passing
// prometheus.DefaultRegisterer exposes them on the echoprometheus /metrics handler.
func NewFetchObserver(reg prometheus.Registerer) (*FetchObserver, error) {
	o := &FetchObserver{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_fetch_attempts_total",
			Help: "Upstream candidate attempts by candidate and outcome.",
		}, []string{"candidate", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_fetch_attempt_duration_seconds",
			Help:    "Latency of upstream candidate attempts.",
			Buckets: prometheus.DefBuckets,
		}, []string{"candidate"}),
	}

	for _, collector := range []prometheus.Collector{o.attempts, o.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *FetchObserver) ObserveAttempt(_ context.Context, attempt fetcher.Attempt) {
	outcome := OutcomeSuccess
	if !attempt.Succeeded() {
		outcome = OutcomeFailure
	}
	o.attempts.WithLabelValues(attempt.Candidate, outcome).Inc()
	o.duration.WithLabelValues(attempt.Candidate).Observe(attempt.Duration.Seconds())
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics exposes Prometheus collectors for the enrichment workflows.
//
// Dashboard users see the same fallback text whether the service is
// unconfigured or failing. The outcome label tells the two apart.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/taibuivan/indiepub/internal/platform/constants"
)

// EnrichmentMetrics counts workflow outcomes and times completion round trips.
type EnrichmentMetrics struct {
	requestsTotal *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewEnrichmentMetrics creates the collectors and registers them with registry.
func NewEnrichmentMetrics(registry prometheus.Registerer) (*EnrichmentMetrics, error) {
	m := &EnrichmentMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "enrichment_requests_total",
				Help:      "Total number of enrichment workflow invocations",
			},
			[]string{"workflow", "outcome"}, // outcome: success, unconfigured, failed
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "enrichment_duration_seconds",
				Help:      "Time spent in enrichment workflows, including the completion call",
				// 10ms .. ~40s
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
			[]string{"workflow"},
		),
	}

	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Describe implements [prometheus.Collector].
func (m *EnrichmentMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.requestsTotal.Describe(ch)
	m.duration.Describe(ch)
}

// Collect implements [prometheus.Collector].
func (m *EnrichmentMetrics) Collect(ch chan<- prometheus.Metric) {
	m.requestsTotal.Collect(ch)
	m.duration.Collect(ch)
}

// Observe records one finished workflow invocation. A nil receiver is a no-op
// so that tests and tools can run workflows without a registry.
func (m *EnrichmentMetrics) Observe(workflow, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(workflow, outcome).Inc()
	m.duration.WithLabelValues(workflow).Observe(elapsed.Seconds())
}

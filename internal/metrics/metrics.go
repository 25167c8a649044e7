// Package metrics exposes Prometheus counters for the query API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the instrument set on its own registry.
type Collector struct {
	reg *prometheus.Registry

	DatasetTrips prometheus.Gauge
	DatasetDests prometheus.Gauge

	ResolveQueries *prometheus.CounterVec // matched label: hit|miss
	LiveQueries    *prometheus.CounterVec // outcome label

	RequestDuration prometheus.Histogram
}

// NewCollector builds and registers the instrument set.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		DatasetTrips: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "putturbus_dataset_trips",
			Help: "Number of trips in the loaded dataset.",
		}),
		DatasetDests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "putturbus_dataset_destinations",
			Help: "Number of distinct canonical destinations.",
		}),
		ResolveQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "putturbus_resolve_queries_total",
			Help: "Destination resolution queries.",
		}, []string{"matched"}),
		LiveQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "putturbus_live_queries_total",
			Help: "Live board queries by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "putturbus_request_duration_seconds",
			Help:    "HTTP request handling duration.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
	}

	reg.MustRegister(
		c.DatasetTrips, c.DatasetDests,
		c.ResolveQueries, c.LiveQueries,
		c.RequestDuration,
	)

	return c
}

// Handler serves the /metrics endpoint for this registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// ObserveResolve records one resolution attempt.
func (c *Collector) ObserveResolve(matched bool) {
	label := "miss"
	if matched {
		label = "hit"
	}
	c.ResolveQueries.WithLabelValues(label).Inc()
}

// ObserveLive records one live board query.
func (c *Collector) ObserveLive(outcome string) {
	c.LiveQueries.WithLabelValues(outcome).Inc()
}

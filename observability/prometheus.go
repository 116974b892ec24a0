// Package observability exports navigation metrics to Prometheus.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/octonav"
	"github.com/hupe1980/octonav/model"
)

const namespace = "octonav"

// PrometheusCollector implements octonav.MetricsCollector on top of
// Prometheus collectors.
type PrometheusCollector struct {
	builds        *prometheus.CounterVec
	buildLatency  prometheus.Histogram
	graphNodes    prometheus.Gauge
	graphEdges    prometheus.Gauge
	searchLatency *prometheus.HistogramVec
	expanded      prometheus.Histogram
	poolRents     *prometheus.CounterVec
}

var _ octonav.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collectors and registers them with reg.
// A nil reg selects prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Navigation builds by outcome.",
		}, []string{"status"}),
		buildLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of navigation builds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		graphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Nodes in the most recently built graph.",
		}),
		graphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edges in the most recently built graph.",
		}),
		searchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Latency of path searches by status.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"status"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_expanded_nodes",
			Help:      "Nodes expanded per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		poolRents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_rents_total",
			Help:      "Search context rents, split by whether the pool overflowed.",
		}, []string{"source"}),
	}

	for _, col := range []prometheus.Collector{
		c.builds, c.buildLatency, c.graphNodes, c.graphEdges,
		c.searchLatency, c.expanded, c.poolRents,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordBuild implements octonav.MetricsCollector.
func (c *PrometheusCollector) RecordBuild(nodes, edges int, d time.Duration, err error) {
	if err != nil {
		c.builds.WithLabelValues("error").Inc()
		return
	}
	c.builds.WithLabelValues("success").Inc()
	c.buildLatency.Observe(d.Seconds())
	c.graphNodes.Set(float64(nodes))
	c.graphEdges.Set(float64(edges))
}

// RecordSearch implements octonav.MetricsCollector.
func (c *PrometheusCollector) RecordSearch(status model.Status, expanded int, d time.Duration) {
	c.searchLatency.WithLabelValues(status.String()).Observe(d.Seconds())
	c.expanded.Observe(float64(expanded))
}

// RecordPoolRent implements octonav.MetricsCollector.
func (c *PrometheusCollector) RecordPoolRent(overflow bool) {
	source := "pool"
	if overflow {
		source = "overflow"
	}
	c.poolRents.WithLabelValues(source).Inc()
}

// Handler serves the metrics gathered by g on /metrics.
func Handler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}

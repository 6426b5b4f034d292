// Package metrics registers the worker's Prometheus instruments.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "billbridge_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	cycleTotal   *prometheus.CounterVec
	cycleLatency *prometheus.HistogramVec
	itemTotal    *prometheus.CounterVec
)

// Init registers the sync metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		cycleTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "sync_cycles_total",
				Help: "Total sync cycles by cycle and result",
			},
			[]string{"cycle", "result"},
		)
		cycleLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "sync_cycle_latency_seconds",
				Help:    "Sync cycle latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"cycle", "result"},
		)
		itemTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "sync_items_total",
				Help: "Per-item outcomes by cycle and status",
			},
			[]string{"cycle", "status"},
		)

		prometheus.MustRegister(cycleTotal, cycleLatency, itemTotal)
	})
}

// ObserveCycle records one finished cycle.
func ObserveCycle(cycle, result string, duration time.Duration) {
	if cycleTotal == nil {
		return
	}
	cycleTotal.WithLabelValues(cycle, result).Inc()
	cycleLatency.WithLabelValues(cycle, result).Observe(duration.Seconds())
}

// CountItem records one per-item outcome.
func CountItem(cycle, status string) {
	if itemTotal == nil {
		return
	}
	itemTotal.WithLabelValues(cycle, status).Inc()
}

// Handler exposes the default registry for the status server.
func Handler() http.Handler {
	return promhttp.Handler()
}

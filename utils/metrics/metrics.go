package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

// Metrics stores the collectors for requests served by the portal and requests sent to the API
type Metrics struct {
	requestTotal    *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	upstreamTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

// NewMetrics creates Metrics registered with the default prometheus registry
func NewMetrics() *Metrics {
	return New(prometheus.DefaultRegisterer)
}

// New creates Metrics registered with reg.
// Collectors already registered with reg are reused
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tender_portal",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tender_portal",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tender_portal",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Count of requests sent to the tender API",
		}, []string{"method", "path", "status"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tender_portal",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of requests sent to the tender API",
			Buckets:   histogramBuckets,
		}, []string{"method", "path", "status"}),
	}

	m.requestTotal = registerCounter(reg, m.requestTotal)
	m.requestLatency = registerHistogram(reg, m.requestLatency)
	m.upstreamTotal = registerCounter(reg, m.upstreamTotal)
	m.upstreamLatency = registerHistogram(reg, m.upstreamLatency)

	return m
}

func registerCounter(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

func registerHistogram(reg prometheus.Registerer, h *prometheus.HistogramVec) *prometheus.HistogramVec {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing
			}
		}
	}
	return h
}

// ObserveRequest records a request served by the portal
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(duration.Seconds())
}

// ObserveUpstream records a request sent to the tender API.
// A status of 0 means the request never got a response
func (m *Metrics) ObserveUpstream(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	m.upstreamTotal.With(labels).Inc()
	m.upstreamLatency.With(labels).Observe(duration.Seconds())
}

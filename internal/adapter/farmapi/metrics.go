package farmapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const statusError = "error"

// Metrics counts and times API calls.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farmdash",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Requests sent to the farm API.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "farmdash",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Latency of farm API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// observe is a no-op on a nil receiver so the client works without metrics.
func (m *Metrics) observe(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, status).Inc()
	m.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

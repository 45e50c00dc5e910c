package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus instruments for the API server and owns
// its own registry so tests can create collectors independently.
type Collector struct {
	reg *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec // method, route, status labels
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	DBUp             prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campusapi_http_requests_total",
			Help: "Total HTTP requests served.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campusapi_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"method", "route"}),
		RequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "campusapi_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		}),
		DBUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "campusapi_database_up",
			Help: "1 if the last database ping succeeded, 0 otherwise.",
		}),
	}

	reg.MustRegister(
		c.RequestsTotal, c.RequestDuration,
		c.RequestsInFlight, c.DBUp,
	)

	return c
}

// ObserveRequest records one finished HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	statusText := http.StatusText(status)
	if statusText == "" {
		statusText = "unknown"
	}
	c.RequestsTotal.WithLabelValues(method, route, statusText).Inc()
	c.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Document metrics
var (
	DocumentOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_document_operations_total",
			Help: "Total document tree operations",
		},
		[]string{"operation", "result"},
	)

	EntriesDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_entries_deleted_total",
			Help: "Entries removed by cascading deletes",
		},
	)

	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_sessions_active",
			Help: "Number of sessions holding a document tree",
		},
	)
)

// HTTP metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(
		DocumentOpsTotal,
		EntriesDeletedTotal,
		SessionsActive,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}

// ObserveOp counts one document operation. A nil err is recorded as "ok".
func ObserveOp(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	DocumentOpsTotal.WithLabelValues(operation, result).Inc()
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// EchoMiddleware returns Echo middleware that instruments HTTP requests.
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			HTTPRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			HTTPRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

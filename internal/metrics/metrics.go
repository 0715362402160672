package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fincontrol_http_requests_total",
		Help: "Total number of HTTP requests handled, by method, route and status.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration observes request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "fincontrol_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, by method and route.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// OperationsTotal counts store mutations by action and outcome.
var OperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fincontrol_operations_total",
		Help: "Total number of store operations, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// Middleware records request counters and latency for every route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath keeps the label cardinality bounded to declared routes.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}

// ObserveOperation increments the operation counter for a store action.
func ObserveOperation(action string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	OperationsTotal.WithLabelValues(action, outcome).Inc()
}

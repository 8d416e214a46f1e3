package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bookshelf"

var (
	AuthOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Subsystem: "auth", Name: "operations_total", Help: "Auth operations by name and outcome."},
		[]string{"operation", "result"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Subsystem: "http", Name: "requests_total", Help: "HTTP requests by route pattern, method and status."},
		[]string{"route", "method", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds", Help: "HTTP request latency.", Buckets: prometheus.DefBuckets},
		[]string{"route", "method"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(AuthOperations)
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
}

// ObserveAuth - result равен "ok" или имени вида ошибки
func ObserveAuth(operation, result string) {
	AuthOperations.WithLabelValues(operation, result).Inc()
}

func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	busExchanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pfbus",
			Subsystem: "bus",
			Name:      "exchanges_total",
			Help:      "Request/response exchanges on the instrument bus.",
		},
		[]string{"family", "op", "outcome"},
	)
	busDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pfbus",
			Subsystem: "bus",
			Name:      "exchange_duration_seconds",
			Help:      "Instrument bus exchange duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"family", "op"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pfbus",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests served by the monitor.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pfbus",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(busExchanges, busDuration, httpRequests, httpDuration)
	})
}

// RecordBusExchange counts one round trip on the instrument bus. op is
// "read" or "write"; family names the parameter catalogue.
func RecordBusExchange(family, op string, duration time.Duration, err error) {
	RegisterMetrics()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	busExchanges.WithLabelValues(family, op, outcome).Inc()
	busDuration.WithLabelValues(family, op).Observe(duration.Seconds())
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

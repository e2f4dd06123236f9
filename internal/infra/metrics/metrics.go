// File: internal/infra/metrics/metrics.go
package metrics

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	actionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_actions_total",
			Help: "Incoming user actions by kind (command/text/selection).",
		},
		[]string{"kind"},
	)

	handlerErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_handler_errors_total",
			Help: "Handler failures swallowed at the engine boundary, by state.",
		},
		[]string{"state"},
	)

	handlerLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shop_handler_latency_ms",
			Help:    "Handler latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
		},
		[]string{"state", "success"},
	)

	commerceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_commerce_requests_total",
			Help: "Commerce backend requests by operation and HTTP status (0 = transport failure).",
		},
		[]string{"op", "status"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(
			actionsTotal, handlerErrorsTotal, handlerLatencyMs,
			commerceRequestsTotal,
		)
	})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func IncAction(kind string) {
	actionsTotal.WithLabelValues(norm(kind)).Inc()
}

func ObserveHandler(state string, elapsed time.Duration, success bool) {
	if !success {
		handlerErrorsTotal.WithLabelValues(norm(state)).Inc()
	}
	handlerLatencyMs.WithLabelValues(norm(state), strconv.FormatBool(success)).
		Observe(float64(elapsed.Milliseconds()))
}

func IncCommerceRequest(op string, status int) {
	commerceRequestsTotal.WithLabelValues(norm(op), strconv.Itoa(status)).Inc()
}

package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "nanocamo_ledger_requests_total",
	Help: "Ledger HTTP requests by method and status",
}, []string{"method", "status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "nanocamo_ledger_request_duration_seconds",
	Help:    "Ledger HTTP request latency",
	Buckets: prometheus.DefBuckets,
}, []string{"method"})

var paymentsStored = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "nanocamo_ledger_payments_stored",
	Help: "Payments held by the in-memory ledger",
})

package scan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var paymentsScanned = promauto.NewCounter(prometheus.CounterOpts{
	Name: "nanocamo_scan_payments_scanned_total",
	Help: "Ledger payments checked against scanning keys",
})

var paymentsDetected = promauto.NewCounter(prometheus.CounterOpts{
	Name: "nanocamo_scan_payments_detected_total",
	Help: "Ledger payments that matched scanning keys",
})

var batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "nanocamo_scan_batch_duration_seconds",
	Help:    "Time to detect one ledger page",
	Buckets: prometheus.DefBuckets,
})

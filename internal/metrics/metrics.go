package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Bid placement outcomes
	BidsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bids_placed_total",
			Help: "Total number of bid placement attempts",
		},
		[]string{"result"}, // result: success, rejected, error
	)

	// Bid revisions
	BidsUpdated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bids_updated_total",
			Help: "Total number of bid revision attempts",
		},
		[]string{"result"},
	)

	// Acceptance workflow outcomes
	AgreementsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agreements_accepted_total",
			Help: "Total number of agreement acceptance attempts",
		},
		[]string{"result"}, // result: success, already_accepted, setup_pending, rejected, error
	)
)

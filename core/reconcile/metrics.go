package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconciliationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nft_reconciliations_total",
		Help: "Total owner reconciliations by outcome (same, different, error)",
	}, []string{"outcome"})

	reconcileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nft_reconcile_duration_seconds",
		Help:    "Owner reconciliation duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	})

	reportExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nft_report_exports_total",
		Help: "Total report uploads by outcome",
	}, []string{"outcome"})
)

package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nft_ledger_queries_total",
		Help: "Total ledger queries by outcome",
	}, []string{"outcome"})

	ledgerQueryRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nft_ledger_query_retries_total",
		Help: "Ledger query attempts that got no response and were retried",
	})

	ledgerQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nft_ledger_query_duration_seconds",
		Help:    "Ledger query duration in seconds, including retries",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	})
)

package memo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memo_lookups_total",
			Help: "Total number of memo cache lookups",
		},
		[]string{"namespace", "result"},
	)

	evictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memo_evictions_total",
			Help: "Total number of memo cache evictions",
		},
		[]string{"reason"},
	)
)

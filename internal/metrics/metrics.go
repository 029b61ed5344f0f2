package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_predictions_total",
			Help: "Scoring requests by resulting risk level",
		},
		[]string{"level"}, // LOW|MEDIUM|HIGH
	)

	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_customer_lookups_total",
			Help: "Customer detail lookups by outcome",
		},
		[]string{"outcome"}, // hit|miss|unavailable
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		PredictionsTotal,
		LookupsTotal,
	)
}

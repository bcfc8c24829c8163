package fit

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FitPredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_predictions_total",
			Help: "Count of fit predictions by category and whether defaulted measurements were used.",
		},
		[]string{"category", "used_defaults"},
	)

	FitChartFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_chart_fallback_total",
			Help: "Count of predictions that fell back to the generic size chart, by requested category.",
		},
		[]string{"category"},
	)
)

func init() {
	prometheus.MustRegister(FitPredictionsTotal, FitChartFallbackTotal)
}

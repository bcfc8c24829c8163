package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	FeedbackDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fit_feedback_latency_seconds",
		Help:    "Latency of fit feedback endpoint",
		Buckets: prometheus.DefBuckets,
	})

	FeedbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fit_feedback_recorded_total",
		Help: "Total fit feedback records accepted",
	})

	ChartReloadTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fit_chart_reloads_total",
		Help: "How many times the size chart snapshot was reloaded",
	})
)

func Init() {
	prometheus.MustRegister(FeedbackDuration, FeedbackTotal, ChartReloadTotal)
}

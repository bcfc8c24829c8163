package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the fit predict HTTP handler
	FitPredictLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fit_predict_latency_seconds",
		Help:    "Latency of fit prediction handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of fit predictions served
	FitPredictRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fit_predict_requests_total",
		Help: "Total number of fit predict requests",
	})
)

func Init() {
	prometheus.MustRegister(
		FitPredictLatency,
		FitPredictRequests,
	)
}

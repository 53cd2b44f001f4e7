package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	ScoreboardFetches  prometheus.Counter
	BoxScoreFetches    prometheus.Counter
	FetchFailures      *prometheus.CounterVec
	GamesFetched       prometheus.Counter
	FetchDuration      prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}

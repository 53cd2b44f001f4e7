package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ScoreboardFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_scoreboard_fetches_total",
			Help: "The total number of scoreboard fetches attempted.",
		}),
		BoxScoreFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_boxscore_fetches_total",
			Help: "The total number of box score fetches attempted.",
		}),
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_fetch_failures_total",
			Help: "The total number of failed fetches, labeled by failure reason.",
		}, []string{"reason"}),
		GamesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_games_fetched_total",
			Help: "The total number of game records returned by successful fetches.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtside_fetch_duration_seconds",
			Help:    "The duration of individual provider fetches.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtside_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ScoreboardFetches,
		s.BoxScoreFetches,
		s.FetchFailures,
		s.GamesFetched,
		s.FetchDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncScoreboardFetches() {
	s.ScoreboardFetches.Inc()
}

func (s *Service) IncBoxScoreFetches() {
	s.BoxScoreFetches.Inc()
}

func (s *Service) IncFetchFailures(reason string) {
	s.FetchFailures.WithLabelValues(reason).Inc()
}

func (s *Service) AddGamesFetched(count int) {
	s.GamesFetched.Add(float64(count))
}

func (s *Service) ObserveFetchDuration(seconds float64) {
	s.FetchDuration.Observe(seconds)
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}

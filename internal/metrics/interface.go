package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncScoreboardFetches()
	IncBoxScoreFetches()
	IncFetchFailures(reason string)
	AddGamesFetched(count int)
	ObserveFetchDuration(seconds float64)
	SetStartupTime(seconds float64)
}

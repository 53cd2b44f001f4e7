package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	scoreboardFetches int
	boxScoreFetches   int
	fetchFailures     map[string]int
	gamesFetched      int
	fetchDurations    []float64
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		fetchFailures: make(map[string]int),
	}
}

func (m *Mock) IncScoreboardFetches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoreboardFetches++
}

func (m *Mock) IncBoxScoreFetches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boxScoreFetches++
}

func (m *Mock) IncFetchFailures(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchFailures[reason]++
}

func (m *Mock) AddGamesFetched(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesFetched += count
}

func (m *Mock) ObserveFetchDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchDurations = append(m.fetchDurations, seconds)
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// ScoreboardFetches returns the number of times IncScoreboardFetches was called.
func (m *Mock) ScoreboardFetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoreboardFetches
}

// BoxScoreFetches returns the number of times IncBoxScoreFetches was called.
func (m *Mock) BoxScoreFetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.boxScoreFetches
}

// FetchFailures returns the failure count recorded for a reason.
func (m *Mock) FetchFailures(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchFailures[reason]
}

// GamesFetched returns the total game count recorded.
func (m *Mock) GamesFetched() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesFetched
}

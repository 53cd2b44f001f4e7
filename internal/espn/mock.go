package espn

import "sync"

// MockClient is a mock implementation of the SportsClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetScoreboardFunc func(leaguePath, date string) ([]GameRecord, error)
	GetBoxScoreFunc   func(leaguePath, gameID string) (BoxScore, error)

	// Call records
	GetScoreboardCalls []ScoreboardCall
	GetBoxScoreCalls   []BoxScoreCall
}

// ScoreboardCall records one GetScoreboard invocation.
type ScoreboardCall struct {
	LeaguePath string
	Date       string
}

// BoxScoreCall records one GetBoxScore invocation.
type BoxScoreCall struct {
	LeaguePath string
	GameID     string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetScoreboardCalls = nil
	m.GetBoxScoreCalls = nil
}

func (m *MockClient) GetScoreboard(leaguePath, date string) ([]GameRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetScoreboardCalls = append(m.GetScoreboardCalls, ScoreboardCall{LeaguePath: leaguePath, Date: date})
	if m.GetScoreboardFunc != nil {
		return m.GetScoreboardFunc(leaguePath, date)
	}
	return []GameRecord{}, nil
}

func (m *MockClient) GetBoxScore(leaguePath, gameID string) (BoxScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetBoxScoreCalls = append(m.GetBoxScoreCalls, BoxScoreCall{LeaguePath: leaguePath, GameID: gameID})
	if m.GetBoxScoreFunc != nil {
		return m.GetBoxScoreFunc(leaguePath, gameID)
	}
	return BoxScore{}, nil
}

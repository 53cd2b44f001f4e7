package espn

// SportsClient defines the interface for interacting with the sports data
// provider. This allows for mock implementations to be used in tests.
type SportsClient interface {
	// GetScoreboard fetches the games for a league path (e.g. "basketball/nba")
	// on a date in the provider's YYYYMMDD form.
	GetScoreboard(leaguePath, date string) ([]GameRecord, error)
	// GetBoxScore fetches the detailed box score for a single game.
	GetBoxScore(leaguePath, gameID string) (BoxScore, error)
}

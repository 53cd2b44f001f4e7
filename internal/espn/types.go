package espn

import "time"

// GameStatus is the normalized status of a game. Provider status strings are
// mapped onto this set during parsing; anything unmapped fails the fetch.
type GameStatus string

const (
	// GameStatusScheduled means the game has not started yet.
	GameStatusScheduled GameStatus = "SCHEDULED"
	// GameStatusLive means the game is in progress.
	GameStatusLive GameStatus = "LIVE"
	// GameStatusFinal means the game is over.
	GameStatusFinal GameStatus = "FINAL"
)

// GameRecord is one normalized scoreboard entry. Records are immutable after
// parsing; a nil score means the provider reported none (no score yet).
type GameRecord struct {
	ID        string     `json:"id"`
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	HomeScore *int       `json:"home_score"`
	AwayScore *int       `json:"away_score"`
	Status    GameStatus `json:"status"`
	StartTime time.Time  `json:"start_time"`
}

// TeamLine is a team's summary line in a box score header.
type TeamLine struct {
	Name     string `json:"name"`
	HomeAway string `json:"home_away"`
	Score    string `json:"score"`
}

// StatLine is a single named statistic with its display value.
type StatLine struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TeamStats holds one team's statistic rows, in provider order.
type TeamStats struct {
	Team  string     `json:"team"`
	Lines []StatLine `json:"lines"`
}

// PlayerLine is one player's row within a stat category.
type PlayerLine struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// PlayerStatGroup holds one team's player rows for a single stat category.
// Row and column order come straight from the provider; it is display-relevant
// and must not be re-sorted.
type PlayerStatGroup struct {
	Team     string       `json:"team"`
	Category string       `json:"category"`
	Labels   []string     `json:"labels"`
	Players  []PlayerLine `json:"players"`
}

// BoxScore is the detailed per-team and per-player view of a single game.
// It is built on demand for a selected game and discarded on the next query.
type BoxScore struct {
	GameID      string            `json:"game_id"`
	Teams       []TeamLine        `json:"teams"`
	TeamStats   []TeamStats       `json:"team_stats"`
	PlayerStats []PlayerStatGroup `json:"player_stats"`
}

// Wire types for the two provider endpoints we consume. These exist only to
// decode JSON; nothing outside this package sees them.

type scoreboardResponse struct {
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	ID           string             `json:"id"`
	Date         string             `json:"date"`
	Status       eventStatus        `json:"status"`
	Competitions []eventCompetition `json:"competitions"`
}

type eventStatus struct {
	Type eventStatusType `json:"type"`
}

type eventStatusType struct {
	State     string `json:"state"`
	Completed bool   `json:"completed"`
	Detail    string `json:"detail"`
}

type eventCompetition struct {
	Competitors []eventCompetitor `json:"competitors"`
}

type eventCompetitor struct {
	HomeAway string    `json:"homeAway"`
	Score    string    `json:"score"`
	Team     eventTeam `json:"team"`
}

type eventTeam struct {
	DisplayName string `json:"displayName"`
}

type summaryResponse struct {
	Header   summaryHeader   `json:"header"`
	BoxScore summaryBoxScore `json:"boxscore"`
}

type summaryHeader struct {
	Competitions []summaryCompetition `json:"competitions"`
}

type summaryCompetition struct {
	Competitors []eventCompetitor `json:"competitors"`
}

type summaryBoxScore struct {
	Teams   []summaryTeam        `json:"teams"`
	Players []summaryTeamPlayers `json:"players"`
}

type summaryTeam struct {
	Team       eventTeam     `json:"team"`
	Statistics []summaryStat `json:"statistics"`
}

type summaryStat struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}

type summaryTeamPlayers struct {
	Team       eventTeam             `json:"team"`
	Statistics []summaryStatCategory `json:"statistics"`
}

type summaryStatCategory struct {
	Name     string           `json:"name"`
	Labels   []string         `json:"labels"`
	Athletes []summaryAthlete `json:"athletes"`
}

type summaryAthlete struct {
	Athlete summaryAthleteInfo `json:"athlete"`
	Stats   []string           `json:"stats"`
}

type summaryAthleteInfo struct {
	DisplayName string `json:"displayName"`
}

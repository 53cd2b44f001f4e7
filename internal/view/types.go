package view

import (
	"fmt"
	"strings"

	"github.com/mpedersen/courtside/internal/espn"
	"github.com/mpedersen/courtside/internal/scoreboard"
)

// Phase is the view's position in the query cycle.
type Phase string

const (
	// PhaseIdle means no fetch has happened yet.
	PhaseIdle Phase = "IDLE"
	// PhaseFetching means a fetch is in flight.
	PhaseFetching Phase = "FETCHING"
	// PhaseDisplaying means the view shows the last successful fetch.
	PhaseDisplaying Phase = "DISPLAYING"
	// PhaseError means the last fetch failed; rows from the previous success remain.
	PhaseError Phase = "ERROR"
)

// SortKey names a sortable column of the results table.
type SortKey string

const (
	SortAwayTeam  SortKey = "away_team"
	SortHomeTeam  SortKey = "home_team"
	SortAwayScore SortKey = "away_score"
	SortHomeScore SortKey = "home_score"
	SortStatus    SortKey = "status"
	SortStartTime SortKey = "start_time"
)

// ParseSortKey maps a user-facing column name onto a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(value))) {
	case SortAwayTeam:
		return SortAwayTeam, nil
	case SortHomeTeam:
		return SortHomeTeam, nil
	case SortAwayScore:
		return SortAwayScore, nil
	case SortHomeScore:
		return SortHomeScore, nil
	case SortStatus:
		return SortStatus, nil
	case SortStartTime:
		return SortStartTime, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", value)
	}
}

// SortDirection is the order applied to the active sort key.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Snapshot is an immutable copy of the current view state, handed across the
// controller boundary for rendering.
type Snapshot struct {
	Phase         Phase                   `json:"phase"`
	League        string                  `json:"league"`
	Date          string                  `json:"date"`
	Filter        scoreboard.FilterOption `json:"filter"`
	SortKey       SortKey                 `json:"sort_key"`
	SortDirection SortDirection           `json:"sort_direction"`
	Rows          []espn.GameRecord       `json:"rows"`
	LastError     string                  `json:"last_error,omitempty"`
}

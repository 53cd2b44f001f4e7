package scoreboard

import (
	"fmt"
	"strings"

	"github.com/mpedersen/courtside/internal/espn"
)

// FilterOption selects which game statuses the view shows.
type FilterOption string

const (
	FilterAll       FilterOption = "All"
	FilterLive      FilterOption = "Live"
	FilterScheduled FilterOption = "Scheduled"
	FilterFinal     FilterOption = "Final"
)

// ParseFilter maps a user-facing filter value onto a FilterOption.
// Matching is case-insensitive; the empty string means All.
func ParseFilter(value string) (FilterOption, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return FilterAll, nil
	case "live":
		return FilterLive, nil
	case "scheduled":
		return FilterScheduled, nil
	case "final":
		return FilterFinal, nil
	default:
		return "", fmt.Errorf("unknown filter %q, expected All, Live, Scheduled or Final", value)
	}
}

// status returns the game status a non-All option selects.
func (f FilterOption) status() espn.GameStatus {
	switch f {
	case FilterLive:
		return espn.GameStatusLive
	case FilterScheduled:
		return espn.GameStatusScheduled
	default:
		return espn.GameStatusFinal
	}
}

// Filter returns the subset of records matching the option. All is the
// identity and returns the input slice untouched.
func Filter(records []espn.GameRecord, option FilterOption) []espn.GameRecord {
	if option == FilterAll {
		return records
	}
	want := option.status()
	filtered := make([]espn.GameRecord, 0, len(records))
	for _, record := range records {
		if record.Status == want {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

package view

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mpedersen/courtside/internal/espn"
	"github.com/mpedersen/courtside/internal/scoreboard"
)

// Controller owns the view state. All mutation goes through its methods under
// a single mutex, so the rest of the pipeline stays stateless. Fetch results
// are tied to a request token: starting a new fetch supersedes the previous
// token, and results arriving for a superseded token are discarded. The
// displayed rows are always derived from a single successful fetch, never a
// mix of two.
type Controller struct {
	mu sync.Mutex

	phase Phase
	token string

	// league/date of the fetch the current rows came from.
	league string
	date   string

	fetched []espn.GameRecord
	byID    map[string]struct{}

	filter  scoreboard.FilterOption
	sortKey SortKey
	sortDir SortDirection
	rows    []espn.GameRecord

	lastErr string
}

// NewController creates a controller in the Idle phase with default
// presentation: all games, in chronological start order.
func NewController() *Controller {
	return &Controller{
		phase:   PhaseIdle,
		byID:    make(map[string]struct{}),
		filter:  scoreboard.FilterAll,
		sortKey: SortStartTime,
		sortDir: Ascending,
	}
}

// BeginFetch marks a fetch as in flight and returns its token. Any prior
// in-flight fetch is superseded; its result will be discarded on arrival.
func (c *Controller) BeginFetch(league, date string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = uuid.NewString()
	c.phase = PhaseFetching
	log.Debug("Fetch started", "league", league, "date", date, "token", c.token)
	return c.token
}

// ApplyResult installs a successful fetch. It reports false, changing
// nothing, when the token has been superseded by a newer fetch. The filter
// requested with the fetch is installed in the same step as the rows, so a
// concurrent fetch can never have another request's filter applied to its
// rows. The sort resets to the chronological default.
func (c *Controller) ApplyResult(token, league, date string, filter scoreboard.FilterOption, records []espn.GameRecord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.token {
		log.Debug("Discarding stale fetch result", "token", token)
		return false
	}

	c.phase = PhaseDisplaying
	c.league = league
	c.date = date
	c.filter = filter
	c.fetched = records
	c.byID = make(map[string]struct{}, len(records))
	for _, record := range records {
		c.byID[record.ID] = struct{}{}
	}
	c.sortKey = SortStartTime
	c.sortDir = Ascending
	c.lastErr = ""
	c.recompute()
	return true
}

// ApplyError records a failed fetch. The rows from the last successful fetch
// stay on display. Reports false for a superseded token.
func (c *Controller) ApplyError(token string, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.token {
		log.Debug("Discarding stale fetch error", "token", token)
		return false
	}
	c.phase = PhaseError
	c.lastErr = err.Error()
	return true
}

// SetFilter changes the status filter and recomputes the rows from the
// retained fetch. No network call is involved.
func (c *Controller) SetFilter(option scoreboard.FilterOption) []espn.GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = option
	c.recompute()
	return c.rowsCopy()
}

// SortBy re-sorts the current rows by the given key. Selecting the active key
// again toggles the direction; a new key starts ascending. The sort is stable,
// so ties keep their prior relative order.
func (c *Controller) SortBy(key SortKey) []espn.GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key == c.sortKey {
		if c.sortDir == Ascending {
			c.sortDir = Descending
		} else {
			c.sortDir = Ascending
		}
	} else {
		c.sortKey = key
		c.sortDir = Ascending
	}
	sortRecords(c.rows, c.sortKey, c.sortDir)
	return c.rowsCopy()
}

// HasGame reports whether a game id belongs to the most recent successful
// fetch. Box score requests for any other id are stale and must be refused.
func (c *Controller) HasGame(gameID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.byID[gameID]
	return ok
}

// League returns the league the current rows were fetched for.
func (c *Controller) League() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.league
}

// Snapshot returns a copy of the current view state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Phase:         c.phase,
		League:        c.league,
		Date:          c.date,
		Filter:        c.filter,
		SortKey:       c.sortKey,
		SortDirection: c.sortDir,
		Rows:          c.rowsCopy(),
		LastError:     c.lastErr,
	}
}

// recompute rebuilds the rows from the retained fetch: filter first, then the
// active sort. Always builds a fresh slice so the fetch snapshot is never
// reordered in place.
func (c *Controller) recompute() {
	filtered := scoreboard.Filter(c.fetched, c.filter)
	c.rows = make([]espn.GameRecord, len(filtered))
	copy(c.rows, filtered)
	sortRecords(c.rows, c.sortKey, c.sortDir)
}

func (c *Controller) rowsCopy() []espn.GameRecord {
	rows := make([]espn.GameRecord, len(c.rows))
	copy(rows, c.rows)
	return rows
}

// sortRecords stably sorts rows by key. Descending inverts the comparison,
// not the sequence, so ties keep their relative order in both directions.
func sortRecords(rows []espn.GameRecord, key SortKey, dir SortDirection) {
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := compareRecords(rows[i], rows[j], key)
		if dir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareRecords(a, b espn.GameRecord, key SortKey) int {
	switch key {
	case SortAwayTeam:
		return strings.Compare(a.AwayTeam, b.AwayTeam)
	case SortHomeTeam:
		return strings.Compare(a.HomeTeam, b.HomeTeam)
	case SortAwayScore:
		return compareScores(a.AwayScore, b.AwayScore)
	case SortHomeScore:
		return compareScores(a.HomeScore, b.HomeScore)
	case SortStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	default:
		switch {
		case a.StartTime.Before(b.StartTime):
			return -1
		case a.StartTime.After(b.StartTime):
			return 1
		default:
			return 0
		}
	}
}

// compareScores orders a missing score before any real one, matching the
// "no score yet" semantics of scheduled games.
func compareScores(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

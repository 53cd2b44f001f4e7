package scoreboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mpedersen/courtside/internal/espn"
	"github.com/mpedersen/courtside/internal/league"
	"github.com/mpedersen/courtside/internal/metrics"
)

// ErrInvalidDate is returned for a date that is not a well-formed YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// inputDateLayout is the user-facing ISO date form.
const inputDateLayout = "2006-01-02"

// providerDateLayout is the compact form the provider expects.
const providerDateLayout = "20060102"

// Fetcher runs the score-fetching pipeline: validate the query, resolve the
// league, make one provider call, and hand back normalized records. It holds
// no query state; all state lives in the view controller.
type Fetcher struct {
	registry *league.Registry
	client   espn.SportsClient
	metrics  metrics.Metrics
}

// New creates a new Fetcher.
func New(registry *league.Registry, client espn.SportsClient, metrics metrics.Metrics) *Fetcher {
	return &Fetcher{
		registry: registry,
		client:   client,
		metrics:  metrics,
	}
}

// FetchScores fetches the scoreboard for a league and an ISO date. The date
// and league are validated before any network call is attempted.
func (f *Fetcher) FetchScores(leagueName, date string) ([]espn.GameRecord, error) {
	day, err := time.Parse(inputDateLayout, date)
	if err != nil {
		f.metrics.IncFetchFailures(FailureReason(ErrInvalidDate))
		log.Error("Scoreboard fetch rejected", "league", leagueName, "date", date, "error", ErrInvalidDate)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	spec, err := f.registry.Lookup(leagueName)
	if err != nil {
		f.metrics.IncFetchFailures(FailureReason(err))
		log.Error("Scoreboard fetch rejected", "league", leagueName, "date", date, "error", err)
		return nil, err
	}

	f.metrics.IncScoreboardFetches()
	start := time.Now()
	records, err := f.client.GetScoreboard(spec.Path, day.Format(providerDateLayout))
	f.metrics.ObserveFetchDuration(time.Since(start).Seconds())
	if err != nil {
		f.metrics.IncFetchFailures(FailureReason(err))
		return nil, err
	}

	f.metrics.AddGamesFetched(len(records))
	return records, nil
}

// FetchBoxScore fetches the box score for a game within a league. The caller
// is responsible for only passing game ids from the most recent scoreboard.
func (f *Fetcher) FetchBoxScore(leagueName, gameID string) (espn.BoxScore, error) {
	spec, err := f.registry.Lookup(leagueName)
	if err != nil {
		f.metrics.IncFetchFailures(FailureReason(err))
		log.Error("Box score fetch rejected", "league", leagueName, "gameID", gameID, "error", err)
		return espn.BoxScore{}, err
	}

	f.metrics.IncBoxScoreFetches()
	start := time.Now()
	box, err := f.client.GetBoxScore(spec.Path, gameID)
	f.metrics.ObserveFetchDuration(time.Since(start).Seconds())
	if err != nil {
		f.metrics.IncFetchFailures(FailureReason(err))
		return espn.BoxScore{}, err
	}
	return box, nil
}

// FailureReason classifies a pipeline error into a stable label for metrics.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, league.ErrUnsupportedLeague):
		return "unsupported_league"
	case errors.Is(err, espn.ErrGameNotFound):
		return "game_not_found"
	case errors.Is(err, espn.ErrParse):
		return "parse"
	case errors.Is(err, espn.ErrNetwork):
		return "network"
	default:
		return "unknown"
	}
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mpedersen/courtside/internal/espn"
	"github.com/mpedersen/courtside/internal/league"
	"github.com/mpedersen/courtside/internal/scoreboard"
	"github.com/mpedersen/courtside/internal/view"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) LeaguesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, s.Registry.List())
	}
}

// ScoresHandler is the fetch trigger: it runs the full pipeline for a league,
// date and filter and responds with the resulting view snapshot. A failed
// fetch leaves the previously displayed rows in place.
func (s *Server) ScoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueName := r.URL.Query().Get("league")
		if leagueName == "" {
			http.Error(w, "league is required", http.StatusBadRequest)
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().In(s.location()).Format("2006-01-02")
			log.Info("No date provided, defaulting to today", "date", date, "timezone", s.Cfg.Timezone)
		}

		filterOpt, err := scoreboard.ParseFilter(r.URL.Query().Get("filter"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		token := s.View.BeginFetch(leagueName, date)
		records, err := s.Fetcher.FetchScores(leagueName, date)
		if err != nil {
			s.View.ApplyError(token, err)
			http.Error(w, fmt.Sprintf("Fetch failed: %s", err), statusForError(err))
			return
		}

		if !s.View.ApplyResult(token, leagueName, date, filterOpt, records) {
			// A newer fetch superseded this one; its result owns the view now.
			http.Error(w, "Fetch superseded by a newer request", http.StatusConflict)
			return
		}

		respondJSON(w, s.View.Snapshot())
	}
}

// FilterHandler changes the status filter on the current rows. View-only, no
// network call.
func (s *Server) FilterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filterOpt, err := scoreboard.ParseFilter(r.URL.Query().Get("status"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.View.SetFilter(filterOpt)
		respondJSON(w, s.View.Snapshot())
	}
}

// SortHandler re-sorts the current rows by a column. Sorting the same column
// twice toggles the direction. View-only, no network call.
func (s *Server) SortHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := view.ParseSortKey(r.URL.Query().Get("key"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.View.SortBy(key)
		respondJSON(w, s.View.Snapshot())
	}
}

// BoxScoreHandler drills into one game from the current scoreboard. Ids that
// are not part of the most recent successful fetch are refused without a
// network call; the table rows are unaffected either way.
func (s *Server) BoxScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := r.URL.Query().Get("gameId")
		if gameID == "" {
			http.Error(w, "gameId is required", http.StatusBadRequest)
			return
		}

		if !s.View.HasGame(gameID) {
			log.Warn("Box score requested for a game outside the current scoreboard", "gameID", gameID)
			s.Metrics.IncFetchFailures(scoreboard.FailureReason(espn.ErrGameNotFound))
			http.Error(w, fmt.Sprintf("game %s is not part of the current scoreboard", gameID), http.StatusNotFound)
			return
		}

		box, err := s.Fetcher.FetchBoxScore(s.View.League(), gameID)
		if err != nil {
			http.Error(w, fmt.Sprintf("Box score fetch failed: %s", err), statusForError(err))
			return
		}
		respondJSON(w, box)
	}
}

func (s *Server) ViewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, s.View.Snapshot())
	}
}

// location resolves the configured reference time zone, falling back to UTC
// rather than failing a request.
func (s *Server) location() *time.Location {
	loc, err := time.LoadLocation(s.Cfg.Timezone)
	if err != nil {
		log.Warn("Unknown time zone, falling back to UTC", "timezone", s.Cfg.Timezone)
		return time.UTC
	}
	return loc
}

// statusForError maps the pipeline error taxonomy onto HTTP statuses. Bad
// queries are the caller's fault; provider trouble is a bad gateway.
func statusForError(err error) int {
	switch {
	case errors.Is(err, scoreboard.ErrInvalidDate), errors.Is(err, league.ErrUnsupportedLeague):
		return http.StatusBadRequest
	case errors.Is(err, espn.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mpedersen/courtside/internal/config"
	"github.com/mpedersen/courtside/internal/espn"
	"github.com/mpedersen/courtside/internal/league"
	"github.com/mpedersen/courtside/internal/metrics"
	"github.com/mpedersen/courtside/internal/scoreboard"
	"github.com/mpedersen/courtside/internal/view"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a new server with mock clients and a fresh view.
func setupTestServer(t *testing.T, client espn.SportsClient) *Server {
	t.Helper()

	registry := league.NewRegistry()
	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	fetcher := scoreboard.New(registry, client, metricsSvc)
	viewCtrl := view.NewController()
	cfg := config.Config{Timezone: "UTC"}

	return NewServer(registry, fetcher, viewCtrl, metricsSvc, metricsHandler, cfg)
}

func intPtr(v int) *int { return &v }

func mockRecords() []espn.GameRecord {
	base := time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC)
	return []espn.GameRecord{
		{ID: "g1", AwayTeam: "Toronto Raptors", HomeTeam: "Boston Celtics",
			AwayScore: intPtr(110), HomeScore: intPtr(119),
			Status: espn.GameStatusFinal, StartTime: base},
		{ID: "g2", AwayTeam: "Phoenix Suns", HomeTeam: "Los Angeles Lakers",
			Status: espn.GameStatusScheduled, StartTime: base.Add(3 * time.Hour)},
		{ID: "g3", AwayTeam: "Chicago Bulls", HomeTeam: "Miami Heat",
			AwayScore: intPtr(101), HomeScore: intPtr(95),
			Status: espn.GameStatusFinal, StartTime: base.Add(time.Hour)},
	}
}

func doGet(t *testing.T, server *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("GET", target, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func decodeSnapshot(t *testing.T, rr *httptest.ResponseRecorder) view.Snapshot {
	t.Helper()
	var snap view.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	return snap
}

func TestHealthCheckHandler(t *testing.T) {
	server := setupTestServer(t, espn.NewMockClient())

	rr := doGet(t, server, "/health")

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestLeaguesHandler(t *testing.T) {
	server := setupTestServer(t, espn.NewMockClient())

	rr := doGet(t, server, "/leagues")

	require.Equal(t, http.StatusOK, rr.Code)
	var specs []league.Spec
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &specs))
	assert.Len(t, specs, 14)
}

func TestScoresHandler(t *testing.T) {
	t.Run("fetches, filters and displays", func(t *testing.T) {
		client := espn.NewMockClient()
		client.GetScoreboardFunc = func(leaguePath, date string) ([]espn.GameRecord, error) {
			return mockRecords(), nil
		}
		server := setupTestServer(t, client)

		rr := doGet(t, server, "/scores?league=NBA&date=2024-01-15&filter=Final")

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		require.Len(t, client.GetScoreboardCalls, 1)
		assert.Equal(t, "basketball/nba", client.GetScoreboardCalls[0].LeaguePath)
		assert.Equal(t, "20240115", client.GetScoreboardCalls[0].Date)

		snap := decodeSnapshot(t, rr)
		assert.Equal(t, view.PhaseDisplaying, snap.Phase)
		assert.Equal(t, scoreboard.FilterFinal, snap.Filter)
		require.Len(t, snap.Rows, 2)
		for _, row := range snap.Rows {
			assert.Equal(t, espn.GameStatusFinal, row.Status)
		}
	})

	t.Run("date defaults to today when omitted", func(t *testing.T) {
		client := espn.NewMockClient()
		server := setupTestServer(t, client)

		rr := doGet(t, server, "/scores?league=nba")

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		require.Len(t, client.GetScoreboardCalls, 1)
		expected := time.Now().UTC().Format("20060102")
		assert.Equal(t, expected, client.GetScoreboardCalls[0].Date)
	})

	t.Run("malformed date is rejected before the network", func(t *testing.T) {
		client := espn.NewMockClient()
		server := setupTestServer(t, client)

		rr := doGet(t, server, "/scores?league=nba&date=2024-13-40")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid date")
		assert.Empty(t, client.GetScoreboardCalls)
	})

	t.Run("unsupported league is rejected before the network", func(t *testing.T) {
		client := espn.NewMockClient()
		server := setupTestServer(t, client)

		rr := doGet(t, server, "/scores?league=XFL&date=2024-01-15")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "not supported")
		assert.Empty(t, client.GetScoreboardCalls)
	})

	t.Run("a failed fetch keeps the previous rows displayed", func(t *testing.T) {
		client := espn.NewMockClient()
		client.GetScoreboardFunc = func(leaguePath, date string) ([]espn.GameRecord, error) {
			return mockRecords(), nil
		}
		server := setupTestServer(t, client)

		rr := doGet(t, server, "/scores?league=nba&date=2024-01-15")
		require.Equal(t, http.StatusOK, rr.Code)

		client.GetScoreboardFunc = func(leaguePath, date string) ([]espn.GameRecord, error) {
			return nil, espn.ErrNetwork
		}
		rr = doGet(t, server, "/scores?league=nba&date=2024-01-16")
		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), "network")

		rr = doGet(t, server, "/view")
		require.Equal(t, http.StatusOK, rr.Code)
		snap := decodeSnapshot(t, rr)
		assert.Equal(t, view.PhaseError, snap.Phase)
		assert.Len(t, snap.Rows, 3, "rows from the last successful fetch must remain")
	})
}

func TestFilterAndSortHandlers(t *testing.T) {
	client := espn.NewMockClient()
	client.GetScoreboardFunc = func(leaguePath, date string) ([]espn.GameRecord, error) {
		return mockRecords(), nil
	}
	server := setupTestServer(t, client)

	rr := doGet(t, server, "/scores?league=nba&date=2024-01-15")
	require.Equal(t, http.StatusOK, rr.Code)

	t.Run("filter narrows without refetching", func(t *testing.T) {
		rr := doGet(t, server, "/filter?status=Scheduled")
		require.Equal(t, http.StatusOK, rr.Code)
		snap := decodeSnapshot(t, rr)
		require.Len(t, snap.Rows, 1)
		assert.Equal(t, "g2", snap.Rows[0].ID)
		assert.Len(t, client.GetScoreboardCalls, 1, "filtering must not hit the network")
	})

	t.Run("bad filter value is rejected", func(t *testing.T) {
		rr := doGet(t, server, "/filter?status=postponed")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("sort reorders and toggles without refetching", func(t *testing.T) {
		doGet(t, server, "/filter?status=All")

		rr := doGet(t, server, "/sort?key=away_team")
		require.Equal(t, http.StatusOK, rr.Code)
		snap := decodeSnapshot(t, rr)
		require.Len(t, snap.Rows, 3)
		assert.Equal(t, "Chicago Bulls", snap.Rows[0].AwayTeam)
		assert.Equal(t, view.Ascending, snap.SortDirection)

		rr = doGet(t, server, "/sort?key=away_team")
		snap = decodeSnapshot(t, rr)
		assert.Equal(t, "Toronto Raptors", snap.Rows[0].AwayTeam)
		assert.Equal(t, view.Descending, snap.SortDirection)
		assert.Len(t, client.GetScoreboardCalls, 1, "sorting must not hit the network")
	})

	t.Run("bad sort key is rejected", func(t *testing.T) {
		rr := doGet(t, server, "/sort?key=attendance")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestBoxScoreHandler(t *testing.T) {
	t.Run("fetches the box score for a current game", func(t *testing.T) {
		client := espn.NewMockClient()
		client.GetScoreboardFunc = func(leaguePath, date string) ([]espn.GameRecord, error) {
			return mockRecords(), nil
		}
		client.GetBoxScoreFunc = func(leaguePath, gameID string) (espn.BoxScore, error) {
			return espn.BoxScore{
				GameID: gameID,
				Teams: []espn.TeamLine{
					{Name: "Boston Celtics", HomeAway: "home", Score: "119"},
					{Name: "Toronto Raptors", HomeAway: "away", Score: "110"},
				},
			}, nil
		}
		server := setupTestServer(t, client)

		rr := doGet(t, server, "/scores?league=nba&date=2024-01-15")
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doGet(t, server, "/boxscore?gameId=g1")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var box espn.BoxScore
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &box))
		assert.Equal(t, "g1", box.GameID)
		require.Len(t, box.Teams, 2)
		require.Len(t, client.GetBoxScoreCalls, 1)
		assert.Equal(t, "basketball/nba", client.GetBoxScoreCalls[0].LeaguePath)
	})

	t.Run("a stale game id is refused without a network call", func(t *testing.T) {
		client := espn.NewMockClient()
		client.GetScoreboardFunc = func(leaguePath, date string) ([]espn.GameRecord, error) {
			return mockRecords(), nil
		}
		server := setupTestServer(t, client)

		rr := doGet(t, server, "/scores?league=nba&date=2024-01-15")
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doGet(t, server, "/boxscore?gameId=not-in-scoreboard")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Empty(t, client.GetBoxScoreCalls, "stale ids must not reach the provider")

		// The table rows remain untouched.
		snap := decodeSnapshot(t, doGet(t, server, "/view"))
		assert.Len(t, snap.Rows, 3)
	})

	t.Run("an upstream-expired id maps to 404", func(t *testing.T) {
		client := espn.NewMockClient()
		client.GetScoreboardFunc = func(leaguePath, date string) ([]espn.GameRecord, error) {
			return mockRecords(), nil
		}
		client.GetBoxScoreFunc = func(leaguePath, gameID string) (espn.BoxScore, error) {
			return espn.BoxScore{}, espn.ErrGameNotFound
		}
		server := setupTestServer(t, client)

		rr := doGet(t, server, "/scores?league=nba&date=2024-01-15")
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doGet(t, server, "/boxscore?gameId=g1")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing gameId is rejected", func(t *testing.T) {
		server := setupTestServer(t, espn.NewMockClient())

		rr := doGet(t, server, "/boxscore")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// The provider refuses requests without a browser-looking User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Event dates come back with minute precision and a literal Z suffix.
const eventDateLayout = "2006-01-02T15:04Z"

// statusByState maps the provider's enumerated game state onto our statuses.
// The mapping is a closed table: a state outside it fails the fetch with
// ErrParse instead of defaulting, so we never present a misleading status.
var statusByState = map[string]GameStatus{
	"pre":  GameStatusScheduled,
	"in":   GameStatusLive,
	"post": GameStatusFinal,
}

// APIClient is the HTTP client for the provider's scoreboard and summary
// endpoints. It implements the SportsClient interface.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a provider client. The timeout bounds every request; a
// request that exceeds it surfaces as ErrNetwork.
func NewClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: timeout},
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the SportsClient interface.
var _ SportsClient = (*APIClient)(nil)

// GetScoreboard fetches and normalizes the scoreboard for a league and date.
func (c *APIClient) GetScoreboard(leaguePath, date string) ([]GameRecord, error) {
	url := fmt.Sprintf("%s/%s/scoreboard?dates=%s", c.BaseURL, leaguePath, date)

	var response scoreboardResponse
	if err := c.get(url, &response, false); err != nil {
		log.Error("Scoreboard fetch failed", "league", leaguePath, "date", date, "error", err)
		return nil, err
	}

	games := make([]GameRecord, 0, len(response.Events))
	for _, event := range response.Events {
		record, err := parseEvent(event)
		if err != nil {
			log.Error("Scoreboard fetch failed", "league", leaguePath, "date", date, "error", err)
			return nil, err
		}
		games = append(games, record)
	}

	log.Info("Fetched scoreboard", "league", leaguePath, "date", date, "games", len(games))
	return games, nil
}

// GetBoxScore fetches the summary for a single game and extracts the box
// score tables, preserving the provider's row ordering throughout.
func (c *APIClient) GetBoxScore(leaguePath, gameID string) (BoxScore, error) {
	url := fmt.Sprintf("%s/%s/summary?event=%s", c.BaseURL, leaguePath, gameID)

	var response summaryResponse
	if err := c.get(url, &response, true); err != nil {
		log.Error("Box score fetch failed", "league", leaguePath, "gameID", gameID, "error", err)
		return BoxScore{}, err
	}

	box := BoxScore{GameID: gameID}

	if len(response.Header.Competitions) == 0 {
		err := fmt.Errorf("%w: summary has no competition header for game %s", ErrParse, gameID)
		log.Error("Box score fetch failed", "league", leaguePath, "gameID", gameID, "error", err)
		return BoxScore{}, err
	}
	for _, competitor := range response.Header.Competitions[0].Competitors {
		box.Teams = append(box.Teams, TeamLine{
			Name:     competitor.Team.DisplayName,
			HomeAway: competitor.HomeAway,
			Score:    competitor.Score,
		})
	}

	for _, team := range response.BoxScore.Teams {
		stats := TeamStats{Team: team.Team.DisplayName}
		for _, stat := range team.Statistics {
			stats.Lines = append(stats.Lines, StatLine{Name: stat.Name, Value: stat.DisplayValue})
		}
		box.TeamStats = append(box.TeamStats, stats)
	}

	for _, team := range response.BoxScore.Players {
		for _, category := range team.Statistics {
			group := PlayerStatGroup{
				Team:     team.Team.DisplayName,
				Category: category.Name,
				Labels:   category.Labels,
			}
			for _, athlete := range category.Athletes {
				group.Players = append(group.Players, PlayerLine{
					Name:   athlete.Athlete.DisplayName,
					Values: athlete.Stats,
				})
			}
			box.PlayerStats = append(box.PlayerStats, group)
		}
	}

	log.Info("Fetched box score", "league", leaguePath, "gameID", gameID,
		"teams", len(box.Teams), "playerGroups", len(box.PlayerStats))
	return box, nil
}

// get performs one provider request and decodes the JSON body into result.
// gameScoped marks requests for a single game, where the provider answers
// 400/404 for ids it no longer serves; only those map to ErrGameNotFound.
// Everywhere else a non-OK status is provider trouble, ErrNetwork.
func (c *APIClient) get(url string, result any, gameScoped bool) error {
	req, err := http.NewRequestWithContext(context.Background(), "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting provider endpoint", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decoding.
	case gameScoped && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest):
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: provider returned status %d", ErrGameNotFound, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from provider", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("%w: received non-OK HTTP status %d", ErrNetwork, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrParse, err)
	}
	return nil
}

// parseEvent normalizes one scoreboard event into a GameRecord.
func parseEvent(event scoreboardEvent) (GameRecord, error) {
	status, ok := statusByState[event.Status.Type.State]
	if !ok {
		return GameRecord{}, fmt.Errorf("%w: unrecognized game state %q for game %s",
			ErrParse, event.Status.Type.State, event.ID)
	}

	startTime, err := time.Parse(eventDateLayout, event.Date)
	if err != nil {
		// Some leagues report seconds precision instead.
		startTime, err = time.Parse(time.RFC3339, event.Date)
		if err != nil {
			return GameRecord{}, fmt.Errorf("%w: unparsable event date %q for game %s",
				ErrParse, event.Date, event.ID)
		}
	}

	if len(event.Competitions) == 0 {
		return GameRecord{}, fmt.Errorf("%w: game %s has no competition data", ErrParse, event.ID)
	}
	competitors := event.Competitions[0].Competitors
	if len(competitors) != 2 {
		return GameRecord{}, fmt.Errorf("%w: game %s has %d competitors, expected 2",
			ErrParse, event.ID, len(competitors))
	}

	record := GameRecord{
		ID:        event.ID,
		Status:    status,
		StartTime: startTime,
	}
	for _, competitor := range competitors {
		score, err := parseScore(competitor.Score)
		if err != nil {
			return GameRecord{}, fmt.Errorf("%w: game %s has unparsable score %q",
				ErrParse, event.ID, competitor.Score)
		}
		switch competitor.HomeAway {
		case "home":
			record.HomeTeam = competitor.Team.DisplayName
			record.HomeScore = score
		case "away":
			record.AwayTeam = competitor.Team.DisplayName
			record.AwayScore = score
		default:
			return GameRecord{}, fmt.Errorf("%w: game %s has competitor side %q",
				ErrParse, event.ID, competitor.HomeAway)
		}
	}
	if record.HomeTeam == "" || record.AwayTeam == "" {
		return GameRecord{}, fmt.Errorf("%w: game %s is missing a home or away team", ErrParse, event.ID)
	}

	return record, nil
}

// parseScore maps a provider score string to a nullable int. The provider
// omits the score entirely before a game has one.
func parseScore(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

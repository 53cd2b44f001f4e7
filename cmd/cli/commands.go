package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	leagueFlag string
	dateFlag   string
	filterFlag string
	sortFlag   string
	gameFlag   string
)

func init() {
	scoresCmd.Flags().StringVar(&leagueFlag, "league", "nba", "League to fetch scores for")
	scoresCmd.Flags().StringVar(&dateFlag, "date", "", "Date in YYYY-MM-DD form (default: today)")
	scoresCmd.Flags().StringVar(&filterFlag, "filter", "All", "Status filter: All, Live, Scheduled or Final")

	filterCmd.Flags().StringVar(&filterFlag, "status", "All", "Status filter: All, Live, Scheduled or Final")

	sortCmd.Flags().StringVar(&sortFlag, "key", "start_time", "Column to sort by")

	boxScoreCmd.Flags().StringVar(&gameFlag, "game", "", "Game id from the current scoreboard")
	boxScoreCmd.MarkFlagRequired("game")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(leaguesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(boxScoreCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var leaguesCmd = &cobra.Command{
	Use:   "leagues",
	Short: "List the supported leagues",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leagues")
	},
}

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Fetch the scoreboard for a league and date",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		query.Set("league", leagueFlag)
		if dateFlag != "" {
			query.Set("date", dateFlag)
		}
		query.Set("filter", filterFlag)
		return performGetRequest("/scores?" + query.Encode())
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter the current scoreboard by game status",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		query.Set("status", filterFlag)
		return performGetRequest("/filter?" + query.Encode())
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort the current scoreboard by a column (repeat to toggle direction)",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		query.Set("key", sortFlag)
		return performGetRequest("/sort?" + query.Encode())
	},
}

var boxScoreCmd = &cobra.Command{
	Use:   "boxscore",
	Short: "Fetch the box score for a game from the current scoreboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		query.Set("gameId", gameFlag)
		return performGetRequest("/boxscore?" + query.Encode())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

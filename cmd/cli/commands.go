package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show upcoming and recently completed matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/")
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List all teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/teams/")
	},
}

var teamCmd = &cobra.Command{
	Use:   "team ID",
	Short: "Show a team and its players",
	Args:  idArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/team/" + args[0] + "/")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List all matches, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches/")
	},
}

var matchCmd = &cobra.Command{
	Use:   "match ID",
	Short: "Show a match with its ball-by-ball data",
	Args:  idArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/match/" + args[0] + "/")
	},
}

var playerCmd = &cobra.Command{
	Use:   "player ID",
	Short: "Show a player's totals and recent form",
	Args:  idArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/player/" + args[0] + "/")
	},
}

var historyCmd = &cobra.Command{
	Use:   "history ID",
	Short: "Show every match a player has a performance in",
	Args:  idArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/player/" + args[0] + "/matches/")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

// idArg accepts exactly one positive integer id.
func idArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	if id, err := strconv.ParseInt(args[0], 10, 64); err != nil || id <= 0 {
		return fmt.Errorf("invalid id %q: must be a positive integer", args[0])
	}
	return nil
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if useMsgpack {
		req.Header.Set("Accept", "application/msgpack")
	}

	resp, err := http.DefaultClient.Do(req)
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
	fmt.Println(formatBody(resp.Header.Get("Content-Type"), body))

	return nil
}

// formatBody pretty-prints JSON and MessagePack bodies, leaving anything
// else as it came.
func formatBody(contentType string, body []byte) string {
	switch contentType {
	case "application/json":
		var out bytes.Buffer
		if err := json.Indent(&out, body, "", "  "); err == nil {
			return out.String()
		}
	case "application/msgpack":
		var v any
		if err := msgpack.Unmarshal(body, &v); err == nil {
			if pretty, err := json.MarshalIndent(v, "", "  "); err == nil {
				return string(pretty)
			}
		}
	}
	return string(body)
}

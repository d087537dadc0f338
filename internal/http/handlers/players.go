package handlers

import (
	"net/http"

	"github.com/mauv0809/cricket-score/internal/metrics"
	"github.com/mauv0809/cricket-score/internal/stats"
)

// RecentPerformanceCount is how many matches the player page charts.
const RecentPerformanceCount = 5

// PlayerStatsResponse is the player page: totals over every match plus the
// recent matches in chronological order.
type PlayerStatsResponse struct {
	Player          *stats.Player `json:"player"`
	TotalRuns       int           `json:"total_runs"`
	WicketsTaken    int           `json:"wickets_taken"`
	PlayerMatches   []PlayerMatch `json:"player_matches"`
	PlayerStatsData ChartSeries   `json:"player_stats_data"`
}

// PlayerHistoryResponse is every performance of a player, newest first.
type PlayerHistoryResponse struct {
	Player           *stats.Player       `json:"player"`
	AllPlayerMatches []stats.Performance `json:"all_player_matches"`
}

func PlayerStatsHandler(store stats.StatsStore, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			RespondError(w, r, http.StatusNotFound, "player not found")
			return
		}
		player, err := store.GetPlayer(r.Context(), id)
		if err != nil {
			respondStoreError(w, r, m, "GetPlayer", err)
			return
		}
		totals, err := store.GetPlayerAggregateTotals(r.Context(), id)
		if err != nil {
			respondStoreError(w, r, m, "GetPlayerAggregateTotals", err)
			return
		}
		recent, err := store.GetPlayerRecentPerformances(r.Context(), id, RecentPerformanceCount)
		if err != nil {
			respondStoreError(w, r, m, "GetPlayerRecentPerformances", err)
			return
		}
		series, matches := BuildPlayerSeries(recent)
		respond(w, r, http.StatusOK, PlayerStatsResponse{
			Player:          player,
			TotalRuns:       totals.TotalRuns,
			WicketsTaken:    totals.TotalWickets,
			PlayerMatches:   matches,
			PlayerStatsData: series,
		})
	}
}

func PlayerHistoryHandler(store stats.StatsStore, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			RespondError(w, r, http.StatusNotFound, "player not found")
			return
		}
		player, err := store.GetPlayer(r.Context(), id)
		if err != nil {
			respondStoreError(w, r, m, "GetPlayer", err)
			return
		}
		history, err := store.GetPlayerFullHistory(r.Context(), id)
		if err != nil {
			respondStoreError(w, r, m, "GetPlayerFullHistory", err)
			return
		}
		respond(w, r, http.StatusOK, PlayerHistoryResponse{Player: player, AllPlayerMatches: history})
	}
}

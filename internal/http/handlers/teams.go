package handlers

import (
	"net/http"

	"github.com/mauv0809/cricket-score/internal/metrics"
	"github.com/mauv0809/cricket-score/internal/stats"
)

// TeamDetailResponse is a team with its squad.
type TeamDetailResponse struct {
	Team    *stats.Team    `json:"team"`
	Players []stats.Player `json:"players"`
}

func ListTeamsHandler(store stats.StatsStore, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := store.ListTeams(r.Context())
		if err != nil {
			respondStoreError(w, r, m, "ListTeams", err)
			return
		}
		respond(w, r, http.StatusOK, teams)
	}
}

func TeamDetailHandler(store stats.StatsStore, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			RespondError(w, r, http.StatusNotFound, "team not found")
			return
		}
		team, players, err := store.GetTeamWithPlayers(r.Context(), id)
		if err != nil {
			respondStoreError(w, r, m, "GetTeamWithPlayers", err)
			return
		}
		respond(w, r, http.StatusOK, TeamDetailResponse{Team: team, Players: players})
	}
}

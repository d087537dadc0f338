package handlers

import (
	"net/http"
	"time"

	"github.com/mauv0809/cricket-score/internal/metrics"
	"github.com/mauv0809/cricket-score/internal/stats"
)

// HomeResponse lists the matches shown on the landing page.
type HomeResponse struct {
	UpcomingMatches  []matchView `json:"upcoming_matches"`
	CompletedMatches []matchView `json:"completed_matches"`
}

// MatchDetailResponse is a single match with its deliveries.
type MatchDetailResponse struct {
	Match     matchView    `json:"match"`
	Balls     []stats.Ball `json:"balls"`
	GraphData GraphData    `json:"graph_data"`
}

func HomeHandler(store stats.StatsStore, m metrics.Metrics, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asOf := now()
		upcoming, err := store.ListUpcomingAndLiveMatches(r.Context(), asOf, stats.DefaultPageSize)
		if err != nil {
			respondStoreError(w, r, m, "ListUpcomingAndLiveMatches", err)
			return
		}
		completed, err := store.ListRecentlyCompletedMatches(r.Context(), asOf, stats.DefaultPageSize)
		if err != nil {
			respondStoreError(w, r, m, "ListRecentlyCompletedMatches", err)
			return
		}
		respond(w, r, http.StatusOK, HomeResponse{
			UpcomingMatches:  newMatchViews(upcoming),
			CompletedMatches: newMatchViews(completed),
		})
	}
}

func ListMatchesHandler(store stats.StatsStore, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := store.ListAllMatches(r.Context())
		if err != nil {
			respondStoreError(w, r, m, "ListAllMatches", err)
			return
		}
		respond(w, r, http.StatusOK, newMatchViews(matches))
	}
}

func MatchDetailHandler(store stats.StatsStore, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			RespondError(w, r, http.StatusNotFound, "match not found")
			return
		}
		match, err := store.GetMatch(r.Context(), id)
		if err != nil {
			respondStoreError(w, r, m, "GetMatch", err)
			return
		}
		balls, err := store.ListBalls(r.Context(), id)
		if err != nil {
			respondStoreError(w, r, m, "ListBalls", err)
			return
		}
		respond(w, r, http.StatusOK, MatchDetailResponse{
			Match:     newMatchView(*match),
			Balls:     balls,
			GraphData: BuildRunsPerOver(balls),
		})
	}
}

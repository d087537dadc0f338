package stats_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mauv0809/cricket-score/internal/database"
	"github.com/mauv0809/cricket-score/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (stats.StatsStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return stats.New(db), db, dbTeardown
}

type fixture struct {
	mavericks  *stats.Team
	hurricanes *stats.Team
	pandey     *stats.Player
	aman       *stats.Player
}

func createFixture(t *testing.T, store stats.StatsStore) fixture {
	t.Helper()
	ctx := context.Background()

	usa := "USA"
	mavericks, err := store.CreateTeam(ctx, stats.NewTeam{Name: "Mavericks", Country: &usa})
	require.NoError(t, err)
	hurricanes, err := store.CreateTeam(ctx, stats.NewTeam{Name: "Hurricanes"})
	require.NoError(t, err)

	pandey, err := store.CreatePlayer(ctx, stats.NewPlayer{Name: "Pandey", TeamID: mavericks.ID, Role: stats.RoleBatsman})
	require.NoError(t, err)
	aman, err := store.CreatePlayer(ctx, stats.NewPlayer{Name: "Aman", TeamID: hurricanes.ID, Role: stats.RoleBatsman})
	require.NoError(t, err)

	return fixture{mavericks: mavericks, hurricanes: hurricanes, pandey: pandey, aman: aman}
}

func createMatch(t *testing.T, store stats.StatsStore, f fixture, name string, date time.Time, status stats.MatchStatus) *stats.Match {
	t.Helper()
	m, err := store.CreateMatch(context.Background(), stats.NewMatch{
		Name:    name,
		Team1ID: f.mavericks.ID,
		Team2ID: f.hurricanes.ID,
		Date:    date,
		Venue:   "Arena Oval",
		Status:  status,
	})
	require.NoError(t, err)
	return m
}

func TestCreateTeam(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	country := "West Indies"
	team, err := store.CreateTeam(ctx, stats.NewTeam{Name: "Hurricanes", Country: &country})
	require.NoError(t, err)
	assert.NotZero(t, team.ID)
	assert.Equal(t, "Hurricanes", team.Name)
	require.NotNil(t, team.Country)
	assert.Equal(t, "West Indies", *team.Country)
	assert.Nil(t, team.Logo)
	assert.False(t, team.CreatedAt.IsZero())

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := store.CreateTeam(ctx, stats.NewTeam{Name: "Hurricanes"})
		assert.ErrorIs(t, err, stats.ErrDuplicateKey)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := store.CreateTeam(ctx, stats.NewTeam{Name: "  "})
		assert.ErrorIs(t, err, stats.ErrInvalid)
	})
}

func TestGetOrCreateTeam(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	first, created, err := store.GetOrCreateTeam(ctx, stats.NewTeam{Name: "Mavericks"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := store.GetOrCreateTeam(ctx, stats.NewTeam{Name: "Mavericks"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	teams, err := store.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestCreatePlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)

	t.Run("defaults role to batsman", func(t *testing.T) {
		dob := time.Date(1995, time.March, 4, 0, 0, 0, 0, time.UTC)
		p, err := store.CreatePlayer(ctx, stats.NewPlayer{Name: "Quinton", TeamID: f.mavericks.ID, DateOfBirth: &dob})
		require.NoError(t, err)
		assert.Equal(t, stats.RoleBatsman, p.Role)
		assert.Equal(t, f.mavericks.ID, p.Team.ID)
		assert.Equal(t, "Mavericks", p.Team.Name)
		require.NotNil(t, p.DateOfBirth)
		assert.Equal(t, "1995-03-04", *p.DateOfBirth)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := store.CreatePlayer(ctx, stats.NewPlayer{Name: "Ghost", TeamID: 9999})
		assert.ErrorIs(t, err, stats.ErrForeignKeyMissing)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := store.CreatePlayer(ctx, stats.NewPlayer{Name: "Ghost", TeamID: f.mavericks.ID, Role: "Captain"})
		assert.ErrorIs(t, err, stats.ErrInvalid)
	})
}

func TestParseEnums(t *testing.T) {
	role, err := stats.ParseRole("All-Rounder")
	require.NoError(t, err)
	assert.Equal(t, stats.RoleAllRounder, role)

	_, err = stats.ParseRole("all-rounder")
	assert.ErrorIs(t, err, stats.ErrInvalid)

	status, err := stats.ParseMatchStatus("Live")
	require.NoError(t, err)
	assert.Equal(t, stats.StatusLive, status)

	_, err = stats.ParseMatchStatus("Abandoned")
	assert.ErrorIs(t, err, stats.ErrInvalid)
}

func TestCreateMatch(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)

	date := time.Date(2026, time.May, 1, 14, 30, 0, 0, time.UTC)

	t.Run("applies defaults", func(t *testing.T) {
		m, err := store.CreateMatch(ctx, stats.NewMatch{Team1ID: f.mavericks.ID, Team2ID: f.hurricanes.ID, Date: date, Venue: "Central Ground"})
		require.NoError(t, err)
		assert.Equal(t, stats.UnnamedMatch, m.Name)
		assert.Equal(t, stats.StatusUpcoming, m.Status)
		assert.Nil(t, m.Winner)
		assert.True(t, date.Equal(m.Date))
		assert.Equal(t, "Mavericks", m.Team1.Name)
		assert.Equal(t, "Hurricanes", m.Team2.Name)
	})

	t.Run("winner is not checked against participants", func(t *testing.T) {
		other, err := store.CreateTeam(ctx, stats.NewTeam{Name: "Strikers"})
		require.NoError(t, err)
		m, err := store.CreateMatch(ctx, stats.NewMatch{Team1ID: f.mavericks.ID, Team2ID: f.hurricanes.ID, Date: date, Venue: "Oval", Status: stats.StatusCompleted, WinnerID: &other.ID})
		require.NoError(t, err)
		require.NotNil(t, m.Winner)
		assert.Equal(t, "Strikers", m.Winner.Name)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := store.CreateMatch(ctx, stats.NewMatch{Team1ID: f.mavericks.ID, Team2ID: 9999, Date: date, Venue: "Oval"})
		assert.ErrorIs(t, err, stats.ErrForeignKeyMissing)
	})

	t.Run("unknown winner", func(t *testing.T) {
		missing := int64(9999)
		_, err := store.CreateMatch(ctx, stats.NewMatch{Team1ID: f.mavericks.ID, Team2ID: f.hurricanes.ID, Date: date, Venue: "Oval", WinnerID: &missing})
		assert.ErrorIs(t, err, stats.ErrForeignKeyMissing)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := store.CreateMatch(ctx, stats.NewMatch{Team1ID: f.mavericks.ID, Team2ID: f.hurricanes.ID, Date: date, Venue: "Oval", Status: "Abandoned"})
		assert.ErrorIs(t, err, stats.ErrInvalid)
	})

	t.Run("missing match", func(t *testing.T) {
		_, err := store.GetMatch(ctx, 9999)
		assert.ErrorIs(t, err, stats.ErrNotFound)
	})
}

func TestMatchLabel(t *testing.T) {
	m := stats.Match{
		Name:  stats.UnnamedMatch,
		Team1: stats.TeamRef{Name: "Mavericks"},
		Team2: stats.TeamRef{Name: "Hurricanes"},
	}
	assert.Equal(t, "Mavericks vs Hurricanes", m.Label())

	m.Name = ""
	assert.Equal(t, "Mavericks vs Hurricanes", m.Label())

	m.Name = "League Cup Final"
	assert.Equal(t, "League Cup Final", m.Label())
}

func TestMatchListings(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)

	today := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.UTC)
	final := createMatch(t, store, f, "League Cup Final", today.AddDate(0, 0, -7), stats.StatusCompleted)
	semi := createMatch(t, store, f, "Championship Semifinal", today.AddDate(0, 0, -15), stats.StatusCompleted)
	warmup := createMatch(t, store, f, "Friendly Warm-up", today.AddDate(0, 0, 3), stats.StatusUpcoming)
	live := createMatch(t, store, f, "", today.Add(2*time.Hour), stats.StatusLive)
	// Completed but dated in the future, and Upcoming but dated in the past.
	futureCompleted := createMatch(t, store, f, "Future Completed", today.AddDate(0, 0, 1), stats.StatusCompleted)
	staleUpcoming := createMatch(t, store, f, "Stale Upcoming", today.AddDate(0, 0, -2), stats.StatusUpcoming)

	ids := func(ms []stats.Match) []int64 {
		out := make([]int64, 0, len(ms))
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}

	t.Run("upcoming and live, soonest first", func(t *testing.T) {
		upcoming, err := store.ListUpcomingAndLiveMatches(ctx, today, stats.DefaultPageSize)
		require.NoError(t, err)
		assert.Equal(t, []int64{live.ID, warmup.ID}, ids(upcoming))
		assert.NotContains(t, ids(upcoming), futureCompleted.ID)
		assert.NotContains(t, ids(upcoming), staleUpcoming.ID)
	})

	t.Run("recently completed, latest first", func(t *testing.T) {
		completed, err := store.ListRecentlyCompletedMatches(ctx, today, stats.DefaultPageSize)
		require.NoError(t, err)
		assert.Equal(t, []int64{final.ID, semi.ID}, ids(completed))
		assert.NotContains(t, ids(completed), staleUpcoming.ID)
	})

	t.Run("all matches, latest first", func(t *testing.T) {
		all, err := store.ListAllMatches(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{warmup.ID, futureCompleted.ID, live.ID, staleUpcoming.ID, final.ID, semi.ID}, ids(all))
	})

	t.Run("page size is bounded", func(t *testing.T) {
		for i := 0; i < 7; i++ {
			createMatch(t, store, f, "", today.AddDate(0, 0, 10+i), stats.StatusUpcoming)
		}
		upcoming, err := store.ListUpcomingAndLiveMatches(ctx, today, 0)
		require.NoError(t, err)
		assert.Len(t, upcoming, stats.DefaultPageSize)
	})
}

func TestCompletedFinalScenario(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)

	today := time.Now()
	final, err := store.CreateMatch(ctx, stats.NewMatch{
		Name:     "League Cup Final",
		Team1ID:  f.mavericks.ID,
		Team2ID:  f.hurricanes.ID,
		Date:     today.AddDate(0, 0, -7),
		Venue:    "Arena Oval",
		Status:   stats.StatusCompleted,
		WinnerID: &f.mavericks.ID,
	})
	require.NoError(t, err)

	all, err := store.ListAllMatches(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	assert.Equal(t, "League Cup Final", all[0].Name)

	completed, err := store.ListRecentlyCompletedMatches(ctx, today, stats.DefaultPageSize)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, final.ID, completed[0].ID)
	require.NotNil(t, completed[0].Winner)
	assert.Equal(t, "Mavericks", completed[0].Winner.Name)

	upcoming, err := store.ListUpcomingAndLiveMatches(ctx, today, stats.DefaultPageSize)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}

func TestGetTeamWithPlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)

	for _, name := range []string{"Venkatesh", "Ajinkya", "Quinton"} {
		_, err := store.CreatePlayer(ctx, stats.NewPlayer{Name: name, TeamID: f.mavericks.ID})
		require.NoError(t, err)
	}

	team, players, err := store.GetTeamWithPlayers(ctx, f.mavericks.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mavericks", team.Name)

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Ajinkya", "Pandey", "Quinton", "Venkatesh"}, names)

	_, _, err = store.GetTeamWithPlayers(ctx, 9999)
	assert.ErrorIs(t, err, stats.ErrNotFound)
}

func TestPlayerAggregateTotals(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)

	t.Run("no performances yields zero totals", func(t *testing.T) {
		totals, err := store.GetPlayerAggregateTotals(ctx, f.aman.ID)
		require.NoError(t, err)
		assert.Equal(t, stats.Totals{}, totals)
	})

	t.Run("totals match the raw rows", func(t *testing.T) {
		base := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
		figures := []struct{ runs, wickets int }{{11, 0}, {42, 1}, {0, 3}, {7, 2}, {19, 0}, {63, 1}, {5, 0}}
		for i, fig := range figures {
			m := createMatch(t, store, f, "", base.AddDate(0, 0, i), stats.StatusCompleted)
			_, err := store.RecordPerformance(ctx, stats.NewPerformance{
				PlayerID: f.pandey.ID, MatchID: m.ID, RunsScored: fig.runs, WicketsTaken: fig.wickets,
			})
			require.NoError(t, err)
		}

		var rawRuns, rawWickets int
		err := db.QueryRow("SELECT SUM(runs_scored), SUM(wickets_taken) FROM player_match_performances WHERE player_id = ?", f.pandey.ID).Scan(&rawRuns, &rawWickets)
		require.NoError(t, err)

		totals, err := store.GetPlayerAggregateTotals(ctx, f.pandey.ID)
		require.NoError(t, err)
		assert.Equal(t, stats.Totals{TotalRuns: rawRuns, TotalWickets: rawWickets}, totals)
		assert.Equal(t, 147, totals.TotalRuns, "totals cover every performance, not just the recent ones")
		assert.Equal(t, 7, totals.TotalWickets)
	})
}

func TestRecordPerformance(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)
	match1 := createMatch(t, store, f, "", time.Now().AddDate(0, 0, -7), stats.StatusCompleted)

	p, err := store.RecordPerformance(ctx, stats.NewPerformance{PlayerID: f.pandey.ID, MatchID: match1.ID, RunsScored: 11, BallsFaced: 5})
	require.NoError(t, err)
	assert.Equal(t, "Mavericks vs Hurricanes", p.MatchLabel)

	t.Run("second insert for the same pair fails", func(t *testing.T) {
		_, err := store.RecordPerformance(ctx, stats.NewPerformance{PlayerID: f.pandey.ID, MatchID: match1.ID, RunsScored: 15})
		assert.ErrorIs(t, err, stats.ErrDuplicateKey)
	})

	t.Run("upsert updates in place", func(t *testing.T) {
		updated, err := store.UpsertPerformance(ctx, stats.NewPerformance{PlayerID: f.pandey.ID, MatchID: match1.ID, RunsScored: 15, BallsFaced: 9})
		require.NoError(t, err)
		assert.Equal(t, p.ID, updated.ID)

		history, err := store.GetPlayerFullHistory(ctx, f.pandey.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, match1.ID, history[0].Match.ID)
		assert.Equal(t, 15, history[0].RunsScored)
		assert.Equal(t, 9, history[0].BallsFaced)
	})

	t.Run("unknown player or match", func(t *testing.T) {
		_, err := store.RecordPerformance(ctx, stats.NewPerformance{PlayerID: 9999, MatchID: match1.ID})
		assert.ErrorIs(t, err, stats.ErrForeignKeyMissing)
		_, err = store.UpsertPerformance(ctx, stats.NewPerformance{PlayerID: f.pandey.ID, MatchID: 9999})
		assert.ErrorIs(t, err, stats.ErrForeignKeyMissing)
	})

	t.Run("negative figures are rejected", func(t *testing.T) {
		_, err := store.UpsertPerformance(ctx, stats.NewPerformance{PlayerID: f.aman.ID, MatchID: match1.ID, RunsScored: -1})
		assert.ErrorIs(t, err, stats.ErrInvalid)
	})
}

func TestPlayerPerformanceOrdering(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	var matchIDs []int64
	// Insert out of date order so ordering cannot come from insertion order.
	for _, offset := range []int{3, 0, 6, 1, 5, 2, 4} {
		m := createMatch(t, store, f, "", base.AddDate(0, 0, offset), stats.StatusCompleted)
		_, err := store.RecordPerformance(ctx, stats.NewPerformance{PlayerID: f.pandey.ID, MatchID: m.ID, RunsScored: offset})
		require.NoError(t, err)
		matchIDs = append(matchIDs, m.ID)
	}

	recent, err := store.GetPlayerRecentPerformances(ctx, f.pandey.ID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	runs := make([]int, 0, len(recent))
	for _, p := range recent {
		runs = append(runs, p.RunsScored)
	}
	assert.Equal(t, []int{6, 5, 4, 3, 2}, runs)

	history, err := store.GetPlayerFullHistory(ctx, f.pandey.ID)
	require.NoError(t, err)
	assert.Len(t, history, len(matchIDs))
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i-1].Match.Date.After(history[i].Match.Date))
	}
}

func TestRecordBall(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)
	m := createMatch(t, store, f, "League Cup Final", time.Now(), stats.StatusLive)

	first, err := store.RecordBall(ctx, stats.NewBall{MatchID: m.ID, Over: 1.4, BatsmanID: f.pandey.ID, BowlerID: f.aman.ID, Runs: 4, Commentary: "FOUR!"})
	require.NoError(t, err)
	assert.Equal(t, "Pandey", first.Batsman.Name)
	assert.Equal(t, "Aman", first.Bowler.Name)

	second, err := store.RecordBall(ctx, stats.NewBall{MatchID: m.ID, Over: 1.4, BatsmanID: f.pandey.ID, BowlerID: f.aman.ID, Runs: 0, IsWicket: true, IsWide: true, Commentary: "Run out off a wide."})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = store.RecordBall(ctx, stats.NewBall{MatchID: m.ID, Over: 0.1, BatsmanID: f.pandey.ID, BowlerID: f.aman.ID, Runs: 1})
	require.NoError(t, err)

	balls, err := store.ListBalls(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, balls, 2)
	assert.Equal(t, 0.1, balls[0].Over)
	assert.Equal(t, 1.4, balls[1].Over)
	assert.True(t, balls[1].IsWicket)
	assert.True(t, balls[1].IsWide)
	assert.False(t, balls[1].IsNoBall)
	assert.Equal(t, "Run out off a wide.", balls[1].Commentary)

	_, err = store.RecordBall(ctx, stats.NewBall{MatchID: 9999, Over: 0.1, BatsmanID: f.pandey.ID, BowlerID: f.aman.ID})
	assert.ErrorIs(t, err, stats.ErrForeignKeyMissing)
}

func TestDeleteTeamCascades(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)

	strikers, err := store.CreateTeam(ctx, stats.NewTeam{Name: "Strikers"})
	require.NoError(t, err)
	rahul, err := store.CreatePlayer(ctx, stats.NewPlayer{Name: "Rahul", TeamID: strikers.ID, Role: stats.RoleBowler})
	require.NoError(t, err)

	// Strikers won a match they did not take part in; winner is unvalidated.
	wonElsewhere, err := store.CreateMatch(ctx, stats.NewMatch{
		Team1ID: f.mavericks.ID, Team2ID: f.hurricanes.ID, Date: time.Now().AddDate(0, 0, -3),
		Venue: "Arena Oval", Status: stats.StatusCompleted, WinnerID: &strikers.ID,
	})
	require.NoError(t, err)
	played, err := store.CreateMatch(ctx, stats.NewMatch{
		Team1ID: strikers.ID, Team2ID: f.hurricanes.ID, Date: time.Now().AddDate(0, 0, -1),
		Venue: "Coastal Stadium", Status: stats.StatusCompleted, WinnerID: &f.hurricanes.ID,
	})
	require.NoError(t, err)

	_, err = store.RecordPerformance(ctx, stats.NewPerformance{PlayerID: rahul.ID, MatchID: wonElsewhere.ID, WicketsTaken: 2})
	require.NoError(t, err)
	_, err = store.RecordPerformance(ctx, stats.NewPerformance{PlayerID: f.aman.ID, MatchID: wonElsewhere.ID, RunsScored: 30})
	require.NoError(t, err)
	_, err = store.RecordBall(ctx, stats.NewBall{MatchID: wonElsewhere.ID, Over: 0.1, BatsmanID: f.aman.ID, BowlerID: rahul.ID, Runs: 1})
	require.NoError(t, err)

	require.NoError(t, store.DeleteTeam(ctx, strikers.ID))

	_, err = store.GetPlayer(ctx, rahul.ID)
	assert.ErrorIs(t, err, stats.ErrNotFound, "players are deleted with their team")

	count := func(query string, args ...any) int {
		var n int
		require.NoError(t, db.QueryRow(query, args...).Scan(&n))
		return n
	}
	assert.Zero(t, count("SELECT COUNT(*) FROM player_match_performances WHERE player_id = ?", rahul.ID))
	assert.Zero(t, count("SELECT COUNT(*) FROM balls WHERE bowler_id = ?", rahul.ID))
	assert.Equal(t, 1, count("SELECT COUNT(*) FROM player_match_performances WHERE player_id = ?", f.aman.ID))

	m, err := store.GetMatch(ctx, wonElsewhere.ID)
	require.NoError(t, err, "a match the team only won survives")
	assert.Nil(t, m.Winner)

	_, err = store.GetMatch(ctx, played.ID)
	assert.ErrorIs(t, err, stats.ErrNotFound, "a match the team played in is deleted")

	assert.ErrorIs(t, store.DeleteTeam(ctx, strikers.ID), stats.ErrNotFound)
}

func TestDeleteMatchCascades(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	f := createFixture(t, store)
	m := createMatch(t, store, f, "", time.Now(), stats.StatusLive)

	_, err := store.RecordPerformance(ctx, stats.NewPerformance{PlayerID: f.pandey.ID, MatchID: m.ID, RunsScored: 4})
	require.NoError(t, err)
	_, err = store.RecordBall(ctx, stats.NewBall{MatchID: m.ID, Over: 0.1, BatsmanID: f.pandey.ID, BowlerID: f.aman.ID, Runs: 4})
	require.NoError(t, err)

	require.NoError(t, store.DeleteMatch(ctx, m.ID))

	var balls, perfs int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM balls").Scan(&balls))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM player_match_performances").Scan(&perfs))
	assert.Zero(t, balls)
	assert.Zero(t, perfs)

	_, err = store.GetPlayer(ctx, f.pandey.ID)
	assert.NoError(t, err, "players outlive their matches")
}

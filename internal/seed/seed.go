// Package seed loads the sample Mavericks vs Hurricanes data set.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-score/internal/stats"
)

const (
	Mavericks  = "Mavericks"
	Hurricanes = "Hurricanes"

	LeagueCupFinal        = "League Cup Final"
	ChampionshipSemifinal = "Championship Semifinal"
	FriendlyWarmUp        = "Friendly Warm-up"
)

// Result counts the rows Populate created. Rows that already existed are
// left alone and not counted.
type Result struct {
	Teams        int
	Players      int
	Matches      int
	Balls        int
	Performances int
}

type squadMember struct {
	name string
	role stats.Role
}

var mavericksSquad = []squadMember{
	{"Pandey", stats.RoleBatsman},
	{"Ajinkya", stats.RoleBatsman},
	{"Venkatesh", stats.RoleBatsman},
	{"A.Raghuvanshi", stats.RoleBatsman},
	{"Quinton", stats.RoleWicketkeeper},
	{"Harshit", stats.RoleBowler},
	{"Chakaravarthy", stats.RoleBowler},
	{"Mayank", stats.RoleBowler},
	{"Vaibhav", stats.RoleBowler},
	{"R.singh", stats.RoleAllRounder},
	{"Anukul Roy", stats.RoleAllRounder},
}

var hurricanesSquad = []squadMember{
	{"Aman", stats.RoleBatsman},
	{"A.Joshi", stats.RoleBatsman},
	{"Riyan", stats.RoleBatsman},
	{"Vaibhav", stats.RoleBatsman},
	{"Yashasvi", stats.RoleBatsman},
	{"Tom Blocker", stats.RoleWicketkeeper},
	{"S.Singh", stats.RoleBowler},
	{"Maheesh", stats.RoleBowler},
	{"S.Sharma", stats.RoleBowler},
	{"S.Sarkar", stats.RoleAllRounder},
	{"Dhruv", stats.RoleAllRounder},
}

// delivery refers to players by squad index.
type delivery struct {
	over       float64
	batsman    int
	bowler     int
	runs       int
	isWicket   bool
	commentary string
}

// Mavericks bat, Hurricanes bowl.
var finalDeliveries = []delivery{
	{0.1, 0, 6, 1, false, "Pandey starts with a quick single."},
	{0.2, 1, 6, 0, false, "Dot ball by S.Singh. Good line."},
	{0.3, 1, 6, 4, false, "FOUR! Ajinkya punches it through covers."},
	{0.4, 1, 6, 2, false, "Two runs taken. Good running."},
	{0.5, 1, 6, 0, true, "WICKET! Ajinkya is caught! Brilliant catch!"},
	{0.6, 2, 6, 1, false, "Venkatesh gets off the mark with a single."},
	{1.1, 0, 7, 6, false, "SIX! Pandey pulls it over square leg!"},
	{1.2, 0, 7, 0, false, "Dot ball. Tightly bowled."},
	{1.3, 0, 7, 4, false, "FOUR! Elegant drive from Pandey."},
	{1.4, 0, 7, 0, true, "BOWLED! Maheesh gets his first! Pandey gone!"},
	{1.5, 9, 7, 1, false, "R.singh takes a single."},
	{1.6, 4, 7, 2, false, "Quinton gets a couple to end the over."},
}

// Hurricanes bat, Mavericks bowl.
var semifinalDeliveries = []delivery{
	{0.1, 0, 5, 0, false, "Aman defends the first ball."},
	{0.2, 0, 5, 4, false, "FOUR! Aman finds the gap!"},
	{0.3, 0, 5, 1, false, "Quick single for Aman."},
	{0.4, 1, 5, 0, false, "A.Joshi defends stoutly."},
	{0.5, 1, 5, 6, false, "SIX! A.Joshi goes aerial!"},
	{0.6, 1, 5, 0, false, "Dot ball to end the over."},
}

type performance struct {
	mavericks bool
	player    int
	runs      int
	wickets   int
	faced     int
	overs     float64
}

var finalPerformances = []performance{
	{true, 0, 11, 0, 5, 0},
	{true, 1, 7, 0, 4, 0},
	{true, 5, 0, 0, 0, 1},
	{true, 9, 1, 0, 1, 0},
	{false, 6, 0, 1, 0, 1},
	{false, 7, 0, 1, 0, 1},
}

var semifinalPerformances = []performance{
	{false, 0, 5, 0, 3, 0},
	{false, 1, 6, 0, 2, 0},
	{true, 5, 0, 0, 0, 1},
}

// Populate inserts the sample teams, squads, matches, deliveries and
// performances. Match dates are relative to now. Running it again does not
// duplicate anything.
func Populate(ctx context.Context, store stats.StatsStore, now time.Time) (Result, error) {
	var res Result

	mavericks, err := team(ctx, store, &res, Mavericks, "USA")
	if err != nil {
		return res, err
	}
	hurricanes, err := team(ctx, store, &res, Hurricanes, "West Indies")
	if err != nil {
		return res, err
	}

	mavPlayers, err := squad(ctx, store, &res, mavericks, mavericksSquad)
	if err != nil {
		return res, err
	}
	hurPlayers, err := squad(ctx, store, &res, hurricanes, hurricanesSquad)
	if err != nil {
		return res, err
	}

	final, err := match(ctx, store, &res, stats.NewMatch{
		Name:     LeagueCupFinal,
		Team1ID:  mavericks.ID,
		Team2ID:  hurricanes.ID,
		Date:     now.AddDate(0, 0, -7),
		Venue:    "Arena Oval",
		Status:   stats.StatusCompleted,
		WinnerID: &mavericks.ID,
	})
	if err != nil {
		return res, err
	}
	semifinal, err := match(ctx, store, &res, stats.NewMatch{
		Name:     ChampionshipSemifinal,
		Team1ID:  hurricanes.ID,
		Team2ID:  mavericks.ID,
		Date:     now.AddDate(0, 0, -15),
		Venue:    "Coastal Stadium",
		Status:   stats.StatusCompleted,
		WinnerID: &hurricanes.ID,
	})
	if err != nil {
		return res, err
	}
	if _, err := match(ctx, store, &res, stats.NewMatch{
		Name:    FriendlyWarmUp,
		Team1ID: mavericks.ID,
		Team2ID: hurricanes.ID,
		Date:    now.AddDate(0, 0, 3),
		Venue:   "Central Ground",
		Status:  stats.StatusUpcoming,
	}); err != nil {
		return res, err
	}

	if err := deliveries(ctx, store, &res, final.ID, finalDeliveries, mavPlayers, hurPlayers); err != nil {
		return res, err
	}
	if err := deliveries(ctx, store, &res, semifinal.ID, semifinalDeliveries, hurPlayers, mavPlayers); err != nil {
		return res, err
	}

	if err := performances(ctx, store, &res, final.ID, finalPerformances, mavPlayers, hurPlayers); err != nil {
		return res, err
	}
	if err := performances(ctx, store, &res, semifinal.ID, semifinalPerformances, mavPlayers, hurPlayers); err != nil {
		return res, err
	}

	log.Info("Sample data populated", "teams", res.Teams, "players", res.Players, "matches", res.Matches,
		"balls", res.Balls, "performances", res.Performances)
	return res, nil
}

func team(ctx context.Context, store stats.StatsStore, res *Result, name, country string) (*stats.Team, error) {
	t, created, err := store.GetOrCreateTeam(ctx, stats.NewTeam{Name: name, Country: &country})
	if err != nil {
		return nil, fmt.Errorf("seed team %s: %w", name, err)
	}
	if created {
		res.Teams++
		log.Debug("Created team", "name", t.Name)
	}
	return t, nil
}

func squad(ctx context.Context, store stats.StatsStore, res *Result, t *stats.Team, members []squadMember) ([]*stats.Player, error) {
	players := make([]*stats.Player, 0, len(members))
	for _, m := range members {
		p, created, err := store.GetOrCreatePlayer(ctx, stats.NewPlayer{Name: m.name, TeamID: t.ID, Role: m.role})
		if err != nil {
			return nil, fmt.Errorf("seed player %s (%s): %w", m.name, t.Name, err)
		}
		if created {
			res.Players++
			log.Debug("Created player", "name", p.Name, "team", t.Name)
		}
		players = append(players, p)
	}
	return players, nil
}

func match(ctx context.Context, store stats.StatsStore, res *Result, nm stats.NewMatch) (*stats.Match, error) {
	m, created, err := store.GetOrCreateMatch(ctx, nm)
	if err != nil {
		return nil, fmt.Errorf("seed match %s: %w", nm.Name, err)
	}
	if created {
		res.Matches++
		log.Debug("Created match", "name", m.Name)
	}
	return m, nil
}

func deliveries(ctx context.Context, store stats.StatsStore, res *Result, matchID int64, balls []delivery, batting, bowling []*stats.Player) error {
	existing, err := store.ListBalls(ctx, matchID)
	if err != nil {
		return fmt.Errorf("seed balls for match %d: %w", matchID, err)
	}
	for _, d := range balls {
		if _, err := store.RecordBall(ctx, stats.NewBall{
			MatchID:    matchID,
			Over:       d.over,
			BatsmanID:  batting[d.batsman].ID,
			BowlerID:   bowling[d.bowler].ID,
			Runs:       d.runs,
			IsWicket:   d.isWicket,
			Commentary: d.commentary,
		}); err != nil {
			return fmt.Errorf("seed ball %.1f for match %d: %w", d.over, matchID, err)
		}
	}
	after, err := store.ListBalls(ctx, matchID)
	if err != nil {
		return fmt.Errorf("seed balls for match %d: %w", matchID, err)
	}
	res.Balls += len(after) - len(existing)
	return nil
}

func performances(ctx context.Context, store stats.StatsStore, res *Result, matchID int64, rows []performance, mavericks, hurricanes []*stats.Player) error {
	for _, row := range rows {
		side := hurricanes
		if row.mavericks {
			side = mavericks
		}
		player := side[row.player]
		if _, err := store.RecordPerformance(ctx, stats.NewPerformance{
			PlayerID:     player.ID,
			MatchID:      matchID,
			RunsScored:   row.runs,
			WicketsTaken: row.wickets,
			BallsFaced:   row.faced,
			OversBowled:  row.overs,
		}); err != nil {
			if errors.Is(err, stats.ErrDuplicateKey) {
				continue
			}
			return fmt.Errorf("seed performance of %s in match %d: %w", player.Name, matchID, err)
		}
		res.Performances++
	}
	return nil
}

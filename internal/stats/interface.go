package stats

import (
	"context"
	"time"
)

// StatsStore defines the interface for interacting with the cricket statistics.
type StatsStore interface {
	CreateTeam(ctx context.Context, t NewTeam) (*Team, error)
	GetOrCreateTeam(ctx context.Context, t NewTeam) (*Team, bool, error)
	GetTeam(ctx context.Context, teamID int64) (*Team, error)
	ListTeams(ctx context.Context) ([]Team, error)
	GetTeamWithPlayers(ctx context.Context, teamID int64) (*Team, []Player, error)
	DeleteTeam(ctx context.Context, teamID int64) error

	CreatePlayer(ctx context.Context, p NewPlayer) (*Player, error)
	GetOrCreatePlayer(ctx context.Context, p NewPlayer) (*Player, bool, error)
	GetPlayer(ctx context.Context, playerID int64) (*Player, error)
	DeletePlayer(ctx context.Context, playerID int64) error

	CreateMatch(ctx context.Context, m NewMatch) (*Match, error)
	GetOrCreateMatch(ctx context.Context, m NewMatch) (*Match, bool, error)
	GetMatch(ctx context.Context, matchID int64) (*Match, error)
	ListUpcomingAndLiveMatches(ctx context.Context, asOf time.Time, limit int) ([]Match, error)
	ListRecentlyCompletedMatches(ctx context.Context, asOf time.Time, limit int) ([]Match, error)
	ListAllMatches(ctx context.Context) ([]Match, error)
	DeleteMatch(ctx context.Context, matchID int64) error

	RecordPerformance(ctx context.Context, p NewPerformance) (*Performance, error)
	UpsertPerformance(ctx context.Context, p NewPerformance) (*Performance, error)
	GetPlayerAggregateTotals(ctx context.Context, playerID int64) (Totals, error)
	GetPlayerRecentPerformances(ctx context.Context, playerID int64, limit int) ([]Performance, error)
	GetPlayerFullHistory(ctx context.Context, playerID int64) ([]Performance, error)

	RecordBall(ctx context.Context, b NewBall) (*Ball, error)
	ListBalls(ctx context.Context, matchID int64) ([]Ball, error)
}

package stats

import (
	"context"
	"sync"
	"time"
)

var _ StatsStore = (*MockStore)(nil)

// MockStore is a mock implementation of the StatsStore interface for testing.
// Unset functions return empty results; lookups of single records return
// ErrNotFound. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateTeamFunc                   func(ctx context.Context, t NewTeam) (*Team, error)
	GetOrCreateTeamFunc              func(ctx context.Context, t NewTeam) (*Team, bool, error)
	GetTeamFunc                      func(ctx context.Context, teamID int64) (*Team, error)
	ListTeamsFunc                    func(ctx context.Context) ([]Team, error)
	GetTeamWithPlayersFunc           func(ctx context.Context, teamID int64) (*Team, []Player, error)
	DeleteTeamFunc                   func(ctx context.Context, teamID int64) error
	CreatePlayerFunc                 func(ctx context.Context, p NewPlayer) (*Player, error)
	GetOrCreatePlayerFunc            func(ctx context.Context, p NewPlayer) (*Player, bool, error)
	GetPlayerFunc                    func(ctx context.Context, playerID int64) (*Player, error)
	DeletePlayerFunc                 func(ctx context.Context, playerID int64) error
	CreateMatchFunc                  func(ctx context.Context, m NewMatch) (*Match, error)
	GetOrCreateMatchFunc             func(ctx context.Context, m NewMatch) (*Match, bool, error)
	GetMatchFunc                     func(ctx context.Context, matchID int64) (*Match, error)
	ListUpcomingAndLiveMatchesFunc   func(ctx context.Context, asOf time.Time, limit int) ([]Match, error)
	ListRecentlyCompletedMatchesFunc func(ctx context.Context, asOf time.Time, limit int) ([]Match, error)
	ListAllMatchesFunc               func(ctx context.Context) ([]Match, error)
	DeleteMatchFunc                  func(ctx context.Context, matchID int64) error
	RecordPerformanceFunc            func(ctx context.Context, p NewPerformance) (*Performance, error)
	UpsertPerformanceFunc            func(ctx context.Context, p NewPerformance) (*Performance, error)
	GetPlayerAggregateTotalsFunc     func(ctx context.Context, playerID int64) (Totals, error)
	GetPlayerRecentPerformancesFunc  func(ctx context.Context, playerID int64, limit int) ([]Performance, error)
	GetPlayerFullHistoryFunc         func(ctx context.Context, playerID int64) ([]Performance, error)
	RecordBallFunc                   func(ctx context.Context, b NewBall) (*Ball, error)
	ListBallsFunc                    func(ctx context.Context, matchID int64) ([]Ball, error)

	// Calls records the name of every method invoked, in order.
	Calls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, name)
}

// CallCount returns how many times the named method was called.
func (m *MockStore) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (m *MockStore) CreateTeam(ctx context.Context, t NewTeam) (*Team, error) {
	m.record("CreateTeam")
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, t)
	}
	return nil, nil
}

func (m *MockStore) GetOrCreateTeam(ctx context.Context, t NewTeam) (*Team, bool, error) {
	m.record("GetOrCreateTeam")
	if m.GetOrCreateTeamFunc != nil {
		return m.GetOrCreateTeamFunc(ctx, t)
	}
	return nil, false, nil
}

func (m *MockStore) GetTeam(ctx context.Context, teamID int64) (*Team, error) {
	m.record("GetTeam")
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) ListTeams(ctx context.Context) ([]Team, error) {
	m.record("ListTeams")
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx)
	}
	return []Team{}, nil
}

func (m *MockStore) GetTeamWithPlayers(ctx context.Context, teamID int64) (*Team, []Player, error) {
	m.record("GetTeamWithPlayers")
	if m.GetTeamWithPlayersFunc != nil {
		return m.GetTeamWithPlayersFunc(ctx, teamID)
	}
	return nil, nil, ErrNotFound
}

func (m *MockStore) DeleteTeam(ctx context.Context, teamID int64) error {
	m.record("DeleteTeam")
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, teamID)
	}
	return nil
}

func (m *MockStore) CreatePlayer(ctx context.Context, p NewPlayer) (*Player, error) {
	m.record("CreatePlayer")
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(ctx, p)
	}
	return nil, nil
}

func (m *MockStore) GetOrCreatePlayer(ctx context.Context, p NewPlayer) (*Player, bool, error) {
	m.record("GetOrCreatePlayer")
	if m.GetOrCreatePlayerFunc != nil {
		return m.GetOrCreatePlayerFunc(ctx, p)
	}
	return nil, false, nil
}

func (m *MockStore) GetPlayer(ctx context.Context, playerID int64) (*Player, error) {
	m.record("GetPlayer")
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, playerID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) DeletePlayer(ctx context.Context, playerID int64) error {
	m.record("DeletePlayer")
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(ctx, playerID)
	}
	return nil
}

func (m *MockStore) CreateMatch(ctx context.Context, nm NewMatch) (*Match, error) {
	m.record("CreateMatch")
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(ctx, nm)
	}
	return nil, nil
}

func (m *MockStore) GetOrCreateMatch(ctx context.Context, nm NewMatch) (*Match, bool, error) {
	m.record("GetOrCreateMatch")
	if m.GetOrCreateMatchFunc != nil {
		return m.GetOrCreateMatchFunc(ctx, nm)
	}
	return nil, false, nil
}

func (m *MockStore) GetMatch(ctx context.Context, matchID int64) (*Match, error) {
	m.record("GetMatch")
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(ctx, matchID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) ListUpcomingAndLiveMatches(ctx context.Context, asOf time.Time, limit int) ([]Match, error) {
	m.record("ListUpcomingAndLiveMatches")
	if m.ListUpcomingAndLiveMatchesFunc != nil {
		return m.ListUpcomingAndLiveMatchesFunc(ctx, asOf, limit)
	}
	return []Match{}, nil
}

func (m *MockStore) ListRecentlyCompletedMatches(ctx context.Context, asOf time.Time, limit int) ([]Match, error) {
	m.record("ListRecentlyCompletedMatches")
	if m.ListRecentlyCompletedMatchesFunc != nil {
		return m.ListRecentlyCompletedMatchesFunc(ctx, asOf, limit)
	}
	return []Match{}, nil
}

func (m *MockStore) ListAllMatches(ctx context.Context) ([]Match, error) {
	m.record("ListAllMatches")
	if m.ListAllMatchesFunc != nil {
		return m.ListAllMatchesFunc(ctx)
	}
	return []Match{}, nil
}

func (m *MockStore) DeleteMatch(ctx context.Context, matchID int64) error {
	m.record("DeleteMatch")
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(ctx, matchID)
	}
	return nil
}

func (m *MockStore) RecordPerformance(ctx context.Context, p NewPerformance) (*Performance, error) {
	m.record("RecordPerformance")
	if m.RecordPerformanceFunc != nil {
		return m.RecordPerformanceFunc(ctx, p)
	}
	return nil, nil
}

func (m *MockStore) UpsertPerformance(ctx context.Context, p NewPerformance) (*Performance, error) {
	m.record("UpsertPerformance")
	if m.UpsertPerformanceFunc != nil {
		return m.UpsertPerformanceFunc(ctx, p)
	}
	return nil, nil
}

func (m *MockStore) GetPlayerAggregateTotals(ctx context.Context, playerID int64) (Totals, error) {
	m.record("GetPlayerAggregateTotals")
	if m.GetPlayerAggregateTotalsFunc != nil {
		return m.GetPlayerAggregateTotalsFunc(ctx, playerID)
	}
	return Totals{}, nil
}

func (m *MockStore) GetPlayerRecentPerformances(ctx context.Context, playerID int64, limit int) ([]Performance, error) {
	m.record("GetPlayerRecentPerformances")
	if m.GetPlayerRecentPerformancesFunc != nil {
		return m.GetPlayerRecentPerformancesFunc(ctx, playerID, limit)
	}
	return []Performance{}, nil
}

func (m *MockStore) GetPlayerFullHistory(ctx context.Context, playerID int64) ([]Performance, error) {
	m.record("GetPlayerFullHistory")
	if m.GetPlayerFullHistoryFunc != nil {
		return m.GetPlayerFullHistoryFunc(ctx, playerID)
	}
	return []Performance{}, nil
}

func (m *MockStore) RecordBall(ctx context.Context, b NewBall) (*Ball, error) {
	m.record("RecordBall")
	if m.RecordBallFunc != nil {
		return m.RecordBallFunc(ctx, b)
	}
	return nil, nil
}

func (m *MockStore) ListBalls(ctx context.Context, matchID int64) ([]Ball, error) {
	m.record("ListBalls")
	if m.ListBallsFunc != nil {
		return m.ListBallsFunc(ctx, matchID)
	}
	return []Ball{}, nil
}

package stats

import (
	"database/sql"
	"fmt"
	"time"
)

// UnnamedMatch is the name a match gets when none is supplied.
const UnnamedMatch = "Unnamed Match"

// DefaultPageSize bounds the home page match listings.
const DefaultPageSize = 5

// Role is a player's playing role.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-Rounder"
	RoleWicketkeeper Role = "Wicketkeeper"
)

// ParseRole converts s into a Role, rejecting anything outside the closed set.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketkeeper:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrInvalid, s)
}

// MatchStatus is the consumer-set lifecycle state of a match. Nothing
// enforces the Upcoming -> Live -> Completed direction.
type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "Upcoming"
	StatusLive      MatchStatus = "Live"
	StatusCompleted MatchStatus = "Completed"
)

// ParseMatchStatus converts s into a MatchStatus, rejecting unknown values.
func ParseMatchStatus(s string) (MatchStatus, error) {
	switch st := MatchStatus(s); st {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown match status %q", ErrInvalid, s)
}

// Team is a cricket team.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Country   *string   `json:"country,omitempty"`
	Logo      *string   `json:"logo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamRef is the short form of a team embedded in matches.
type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PlayerRef is the short form of a player embedded in deliveries.
type PlayerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Player belongs to exactly one team.
type Player struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Team        TeamRef `json:"team"`
	Role        Role    `json:"role"`
	DateOfBirth *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Image       *string `json:"image,omitempty"`
}

// Match is a fixture between two teams.
type Match struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Team1  TeamRef     `json:"team1"`
	Team2  TeamRef     `json:"team2"`
	Date   time.Time   `json:"date"`
	Venue  string      `json:"venue"`
	Status MatchStatus `json:"status"`
	Winner *TeamRef    `json:"winner,omitempty"`
}

// Label is the short display name of a match: its name, unless that is
// empty or the placeholder, in which case "<team1> vs <team2>".
func (m Match) Label() string {
	if m.Name != "" && m.Name != UnnamedMatch {
		return m.Name
	}
	return fmt.Sprintf("%s vs %s", m.Team1.Name, m.Team2.Name)
}

// Performance is one player's contribution in one match.
type Performance struct {
	ID           int64   `json:"id"`
	PlayerID     int64   `json:"player_id"`
	Match        Match   `json:"match"`
	MatchLabel   string  `json:"match_name"`
	RunsScored   int     `json:"runs_scored"`
	WicketsTaken int     `json:"wickets_taken"`
	BallsFaced   int     `json:"balls_faced"`
	OversBowled  float64 `json:"overs_bowled"`
}

// Ball is a single delivery. Over is encoded as "over.ball", e.g. 1.4 is the
// fourth ball of the second over.
type Ball struct {
	ID         int64     `json:"id"`
	MatchID    int64     `json:"match_id"`
	Over       float64   `json:"over"`
	Batsman    PlayerRef `json:"batsman"`
	Bowler     PlayerRef `json:"bowler"`
	Runs       int       `json:"runs"`
	IsWicket   bool      `json:"is_wicket"`
	IsWide     bool      `json:"is_wide"`
	IsNoBall   bool      `json:"is_no_ball"`
	Commentary string    `json:"commentary"`
}

// Totals are a player's aggregate figures across every recorded performance.
type Totals struct {
	TotalRuns    int `json:"total_runs"`
	TotalWickets int `json:"total_wickets"`
}

// NewTeam holds the fields needed to create a team.
type NewTeam struct {
	Name    string
	Country *string
	Logo    *string
}

// NewPlayer holds the fields needed to create a player. An empty Role
// defaults to Batsman.
type NewPlayer struct {
	Name        string
	TeamID      int64
	Role        Role
	DateOfBirth *time.Time
	Image       *string
}

// NewMatch holds the fields needed to create a match. An empty Name becomes
// UnnamedMatch and an empty Status becomes Upcoming.
type NewMatch struct {
	Name     string
	Team1ID  int64
	Team2ID  int64
	Date     time.Time
	Venue    string
	Status   MatchStatus
	WinnerID *int64
}

// NewPerformance holds the fields of a (player, match) performance row.
type NewPerformance struct {
	PlayerID     int64
	MatchID      int64
	RunsScored   int
	WicketsTaken int
	BallsFaced   int
	OversBowled  float64
}

// NewBall holds the fields of a delivery. (MatchID, Over, BatsmanID,
// BowlerID) is its natural key.
type NewBall struct {
	MatchID    int64
	Over       float64
	BatsmanID  int64
	BowlerID   int64
	Runs       int
	IsWicket   bool
	IsWide     bool
	IsNoBall   bool
	Commentary string
}

// store handles all database operations for the statistics.
type store struct {
	db  *sql.DB
	now func() time.Time
}

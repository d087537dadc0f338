package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

const matchColumns = `
	m.id, m.name, m.team1_id, t1.name, m.team2_id, t2.name,
	m.date, m.venue, m.status, m.winner_id, w.name
`

const matchJoins = `
	JOIN teams t1 ON t1.id = m.team1_id
	JOIN teams t2 ON t2.id = m.team2_id
	LEFT JOIN teams w ON w.id = m.winner_id
`

const matchSelect = "SELECT " + matchColumns + " FROM matches m" + matchJoins

// matchScan collects the columns of matchColumns so that match rows can be
// scanned on their own or as part of a wider row.
type matchScan struct {
	m          Match
	date       int64
	winnerID   sql.NullInt64
	winnerName sql.NullString
}

func (ms *matchScan) dest() []any {
	return []any{
		&ms.m.ID, &ms.m.Name, &ms.m.Team1.ID, &ms.m.Team1.Name, &ms.m.Team2.ID, &ms.m.Team2.Name,
		&ms.date, &ms.m.Venue, &ms.m.Status, &ms.winnerID, &ms.winnerName,
	}
}

func (ms *matchScan) match() Match {
	m := ms.m
	m.Date = time.Unix(ms.date, 0).UTC()
	if ms.winnerID.Valid {
		m.Winner = &TeamRef{ID: ms.winnerID.Int64, Name: ms.winnerName.String}
	}
	return m
}

// scanMatch is a helper function to scan a single match row.
func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var ms matchScan
	if err := scanner.Scan(ms.dest()...); err != nil {
		return nil, err
	}
	m := ms.match()
	return &m, nil
}

func (s *store) queryMatches(ctx context.Context, q queryer, where string, args ...any) ([]Match, error) {
	rows, err := q.QueryContext(ctx, matchSelect+where, args...)
	if err != nil {
		log.Error("Failed to query matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	matches := []Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func normalizeMatch(m NewMatch) (NewMatch, error) {
	if m.Name == "" {
		m.Name = UnnamedMatch
	}
	if m.Status == "" {
		m.Status = StatusUpcoming
	}
	if _, err := ParseMatchStatus(string(m.Status)); err != nil {
		return m, err
	}
	return m, nil
}

// CreateMatch inserts a new match. The winner is not checked against the
// two participants.
func (s *store) CreateMatch(ctx context.Context, m NewMatch) (*Match, error) {
	return s.createMatch(ctx, s.db, m)
}

func (s *store) createMatch(ctx context.Context, q queryer, m NewMatch) (*Match, error) {
	m, err := normalizeMatch(m)
	if err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	var id int64
	err = q.QueryRowContext(ctx, `
		INSERT INTO matches (name, team1_id, team2_id, date, venue, status, winner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		m.Name, m.Team1ID, m.Team2ID, m.Date.Unix(), m.Venue, m.Status, m.WinnerID).Scan(&id)
	if err != nil {
		return nil, classify("create match", err)
	}
	log.Info("Created match", "matchID", id, "name", m.Name, "status", m.Status)
	return getMatch(ctx, q, id)
}

// GetOrCreateMatch returns the match with the same name and teams, creating
// it when missing. Date, venue, status and winner only apply on creation.
func (s *store) GetOrCreateMatch(ctx context.Context, m NewMatch) (*Match, bool, error) {
	m, err := normalizeMatch(m)
	if err != nil {
		return nil, false, fmt.Errorf("get or create match: %w", err)
	}
	var (
		match   *Match
		created bool
	)
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := s.queryMatches(ctx, tx,
			"WHERE m.name = ? AND m.team1_id = ? AND m.team2_id = ? ORDER BY m.id LIMIT 1",
			m.Name, m.Team1ID, m.Team2ID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			match = &existing[0]
			return nil
		}
		match, err = s.createMatch(ctx, tx, m)
		created = err == nil
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return match, created, nil
}

// GetMatch retrieves a single match by id.
func (s *store) GetMatch(ctx context.Context, matchID int64) (*Match, error) {
	return getMatch(ctx, s.db, matchID)
}

func getMatch(ctx context.Context, q queryer, matchID int64) (*Match, error) {
	m, err := scanMatch(q.QueryRowContext(ctx, matchSelect+"WHERE m.id = ?", matchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("match %d: %w", matchID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get match %d: %w", matchID, err)
	}
	return m, nil
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

func pageSize(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	return limit
}

// ListUpcomingAndLiveMatches returns Upcoming and Live matches dated on or
// after asOf's day, soonest first.
func (s *store) ListUpcomingAndLiveMatches(ctx context.Context, asOf time.Time, limit int) ([]Match, error) {
	return s.queryMatches(ctx, s.db,
		"WHERE m.status IN (?, ?) AND m.date >= ? ORDER BY m.date ASC, m.id ASC LIMIT ?",
		StatusUpcoming, StatusLive, startOfDay(asOf).Unix(), pageSize(limit))
}

// ListRecentlyCompletedMatches returns Completed matches dated before asOf's
// day, most recent first.
func (s *store) ListRecentlyCompletedMatches(ctx context.Context, asOf time.Time, limit int) ([]Match, error) {
	return s.queryMatches(ctx, s.db,
		"WHERE m.status = ? AND m.date < ? ORDER BY m.date DESC, m.id DESC LIMIT ?",
		StatusCompleted, startOfDay(asOf).Unix(), pageSize(limit))
}

// ListAllMatches returns every match, most recent first.
func (s *store) ListAllMatches(ctx context.Context) ([]Match, error) {
	return s.queryMatches(ctx, s.db, "ORDER BY m.date DESC, m.id DESC")
}

// DeleteMatch removes a match along with its balls and performances.
func (s *store) DeleteMatch(ctx context.Context, matchID int64) error {
	return s.deleteByID(ctx, "matches", matchID)
}

package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

const performanceSelect = `
	SELECT pf.id, pf.player_id, pf.runs_scored, pf.wickets_taken, pf.balls_faced, pf.overs_bowled,
	` + matchColumns + `
	FROM player_match_performances pf
	JOIN matches m ON m.id = pf.match_id
` + matchJoins

func scanPerformance(scanner interface{ Scan(...any) error }) (*Performance, error) {
	var p Performance
	var ms matchScan
	dest := append([]any{&p.ID, &p.PlayerID, &p.RunsScored, &p.WicketsTaken, &p.BallsFaced, &p.OversBowled}, ms.dest()...)
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	p.Match = ms.match()
	p.MatchLabel = p.Match.Label()
	return &p, nil
}

func (s *store) queryPerformances(ctx context.Context, where string, args ...any) ([]Performance, error) {
	rows, err := s.db.QueryContext(ctx, performanceSelect+where, args...)
	if err != nil {
		log.Error("Failed to query performances", "error", err)
		return nil, err
	}
	defer rows.Close()

	performances := []Performance{}
	for rows.Next() {
		p, err := scanPerformance(rows)
		if err != nil {
			return nil, err
		}
		performances = append(performances, *p)
	}
	return performances, rows.Err()
}

func (s *store) getPerformance(ctx context.Context, id int64) (*Performance, error) {
	p, err := scanPerformance(s.db.QueryRowContext(ctx, performanceSelect+"WHERE pf.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("performance %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get performance %d: %w", id, err)
	}
	return p, nil
}

func validatePerformance(p NewPerformance) error {
	return errors.Join(
		nonNegative("runs_scored", float64(p.RunsScored)),
		nonNegative("wickets_taken", float64(p.WicketsTaken)),
		nonNegative("balls_faced", float64(p.BallsFaced)),
		nonNegative("overs_bowled", p.OversBowled),
	)
}

// RecordPerformance inserts the performance of a player in a match. A second
// row for the same (player, match) pair fails with ErrDuplicateKey.
func (s *store) RecordPerformance(ctx context.Context, p NewPerformance) (*Performance, error) {
	if err := validatePerformance(p); err != nil {
		return nil, fmt.Errorf("record performance: %w", err)
	}
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO player_match_performances (player_id, match_id, runs_scored, wickets_taken, balls_faced, overs_bowled)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		p.PlayerID, p.MatchID, p.RunsScored, p.WicketsTaken, p.BallsFaced, p.OversBowled).Scan(&id)
	if err != nil {
		return nil, classify("record performance", err)
	}
	log.Info("Recorded performance", "playerID", p.PlayerID, "matchID", p.MatchID, "runs", p.RunsScored, "wickets", p.WicketsTaken)
	return s.getPerformance(ctx, id)
}

// UpsertPerformance records a performance, overwriting the figures of an
// existing row for the same (player, match) pair.
func (s *store) UpsertPerformance(ctx context.Context, p NewPerformance) (*Performance, error) {
	if err := validatePerformance(p); err != nil {
		return nil, fmt.Errorf("upsert performance: %w", err)
	}
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO player_match_performances (player_id, match_id, runs_scored, wickets_taken, balls_faced, overs_bowled)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id, match_id) DO UPDATE SET
			runs_scored = excluded.runs_scored,
			wickets_taken = excluded.wickets_taken,
			balls_faced = excluded.balls_faced,
			overs_bowled = excluded.overs_bowled
		RETURNING id`,
		p.PlayerID, p.MatchID, p.RunsScored, p.WicketsTaken, p.BallsFaced, p.OversBowled).Scan(&id)
	if err != nil {
		return nil, classify("upsert performance", err)
	}
	log.Info("Upserted performance", "playerID", p.PlayerID, "matchID", p.MatchID, "runs", p.RunsScored, "wickets", p.WicketsTaken)
	return s.getPerformance(ctx, id)
}

// GetPlayerAggregateTotals sums runs and wickets over every performance of
// the player. A player without performances has zero totals.
func (s *store) GetPlayerAggregateTotals(ctx context.Context, playerID int64) (Totals, error) {
	var t Totals
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(runs_scored), 0), COALESCE(SUM(wickets_taken), 0)
		FROM player_match_performances
		WHERE player_id = ?`, playerID).Scan(&t.TotalRuns, &t.TotalWickets)
	if err != nil {
		log.Error("Failed to aggregate player totals", "error", err, "playerID", playerID)
		return Totals{}, fmt.Errorf("aggregate totals for player %d: %w", playerID, err)
	}
	return t, nil
}

// GetPlayerRecentPerformances returns the player's latest performances, most
// recent match first.
func (s *store) GetPlayerRecentPerformances(ctx context.Context, playerID int64, limit int) ([]Performance, error) {
	return s.queryPerformances(ctx,
		"WHERE pf.player_id = ? ORDER BY m.date DESC, m.id DESC LIMIT ?",
		playerID, pageSize(limit))
}

// GetPlayerFullHistory returns every performance of the player, most recent
// match first.
func (s *store) GetPlayerFullHistory(ctx context.Context, playerID int64) ([]Performance, error) {
	return s.queryPerformances(ctx, "WHERE pf.player_id = ? ORDER BY m.date DESC, m.id DESC", playerID)
}

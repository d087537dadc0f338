package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

const ballSelect = `
	SELECT b.id, b.match_id, b.over_number, b.batsman_id, bat.name, b.bowler_id, bowl.name,
		b.runs, b.is_wicket, b.is_wide, b.is_no_ball, b.commentary
	FROM balls b
	JOIN players bat ON bat.id = b.batsman_id
	JOIN players bowl ON bowl.id = b.bowler_id
`

func scanBall(scanner interface{ Scan(...any) error }) (*Ball, error) {
	var b Ball
	err := scanner.Scan(
		&b.ID, &b.MatchID, &b.Over, &b.Batsman.ID, &b.Batsman.Name, &b.Bowler.ID, &b.Bowler.Name,
		&b.Runs, &b.IsWicket, &b.IsWide, &b.IsNoBall, &b.Commentary,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// RecordBall stores a delivery. Re-recording the same (match, over, batsman,
// bowler) updates the outcome of the existing row instead of adding one.
// Batsman and bowler are not checked against the match's teams.
func (s *store) RecordBall(ctx context.Context, b NewBall) (*Ball, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO balls (match_id, over_number, batsman_id, bowler_id, runs, is_wicket, is_wide, is_no_ball, commentary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(match_id, over_number, batsman_id, bowler_id) DO UPDATE SET
			runs = excluded.runs,
			is_wicket = excluded.is_wicket,
			is_wide = excluded.is_wide,
			is_no_ball = excluded.is_no_ball,
			commentary = excluded.commentary
		RETURNING id`,
		b.MatchID, b.Over, b.BatsmanID, b.BowlerID, b.Runs, b.IsWicket, b.IsWide, b.IsNoBall, b.Commentary).Scan(&id)
	if err != nil {
		return nil, classify("record ball", err)
	}
	log.Debug("Recorded ball", "matchID", b.MatchID, "over", b.Over, "runs", b.Runs, "wicket", b.IsWicket)

	ball, err := scanBall(s.db.QueryRowContext(ctx, ballSelect+"WHERE b.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ball %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get ball %d: %w", id, err)
	}
	return ball, nil
}

// ListBalls returns the deliveries of a match in bowling order.
func (s *store) ListBalls(ctx context.Context, matchID int64) ([]Ball, error) {
	rows, err := s.db.QueryContext(ctx, ballSelect+"WHERE b.match_id = ? ORDER BY b.over_number, b.id", matchID)
	if err != nil {
		log.Error("Failed to query balls", "error", err, "matchID", matchID)
		return nil, err
	}
	defer rows.Close()

	balls := []Ball{}
	for rows.Next() {
		b, err := scanBall(rows)
		if err != nil {
			return nil, err
		}
		balls = append(balls, *b)
	}
	return balls, rows.Err()
}

package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// dateLayout is the storage format for dates without a time component.
const dateLayout = "2006-01-02"

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// New creates a new StatsStore.
func New(db *sql.DB) StatsStore {
	return &store{
		db:  db,
		now: time.Now,
	}
}

// withTx runs fn inside a transaction, committing on success.
func (s *store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("Failed to roll back transaction", "error", rbErr)
		}
		return err
	}
	return tx.Commit()
}

const teamColumns = `id, name, country, logo, created_at`

func scanTeam(scanner interface{ Scan(...any) error }) (*Team, error) {
	var t Team
	var country, logo sql.NullString
	var createdAt int64
	if err := scanner.Scan(&t.ID, &t.Name, &country, &logo, &createdAt); err != nil {
		return nil, err
	}
	t.Country = nullString(country)
	t.Logo = nullString(logo)
	t.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &t, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// CreateTeam inserts a new team. Team names are unique.
func (s *store) CreateTeam(ctx context.Context, t NewTeam) (*Team, error) {
	return s.createTeam(ctx, s.db, t)
}

func (s *store) createTeam(ctx context.Context, q queryer, t NewTeam) (*Team, error) {
	if strings.TrimSpace(t.Name) == "" {
		return nil, fmt.Errorf("create team: %w: name is required", ErrInvalid)
	}
	row := q.QueryRowContext(ctx, `
		INSERT INTO teams (name, country, logo, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING `+teamColumns,
		t.Name, t.Country, t.Logo, s.now().UTC().Unix())
	team, err := scanTeam(row)
	if err != nil {
		return nil, classify("create team", err)
	}
	log.Info("Created team", "teamID", team.ID, "name", team.Name)
	return team, nil
}

// GetOrCreateTeam returns the team with the given name, creating it when it
// does not exist yet. Only Name is used for the lookup.
func (s *store) GetOrCreateTeam(ctx context.Context, t NewTeam) (*Team, bool, error) {
	var (
		team    *Team
		created bool
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := scanTeam(tx.QueryRowContext(ctx, "SELECT "+teamColumns+" FROM teams WHERE name = ?", t.Name))
		if err == nil {
			team = existing
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("lookup team: %w", err)
		}
		team, err = s.createTeam(ctx, tx, t)
		created = err == nil
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return team, created, nil
}

// GetTeam retrieves a single team by id.
func (s *store) GetTeam(ctx context.Context, teamID int64) (*Team, error) {
	return getTeam(ctx, s.db, teamID)
}

func getTeam(ctx context.Context, q queryer, teamID int64) (*Team, error) {
	team, err := scanTeam(q.QueryRowContext(ctx, "SELECT "+teamColumns+" FROM teams WHERE id = ?", teamID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %d: %w", teamID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get team %d: %w", teamID, err)
	}
	return team, nil
}

// ListTeams returns every team ordered by name.
func (s *store) ListTeams(ctx context.Context) ([]Team, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+teamColumns+" FROM teams ORDER BY name")
	if err != nil {
		log.Error("Failed to query teams", "error", err)
		return nil, err
	}
	defer rows.Close()

	teams := []Team{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

// GetTeamWithPlayers returns a team together with its players ordered by name.
func (s *store) GetTeamWithPlayers(ctx context.Context, teamID int64) (*Team, []Player, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	players, err := s.queryPlayers(ctx, s.db, "WHERE p.team_id = ? ORDER BY p.name, p.id", teamID)
	if err != nil {
		return nil, nil, err
	}
	return team, players, nil
}

// DeleteTeam removes a team. Its players (and their performances and balls)
// go with it, as do matches it took part in; matches it merely won keep
// existing with no winner.
func (s *store) DeleteTeam(ctx context.Context, teamID int64) error {
	return s.deleteByID(ctx, "teams", teamID)
}

func (s *store) deleteByID(ctx context.Context, table string, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return classify("delete from "+table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}
	log.Info("Deleted record", "table", table, "id", id)
	return nil
}

const playerSelect = `
	SELECT p.id, p.name, p.team_id, t.name, p.role, p.date_of_birth, p.image
	FROM players p
	JOIN teams t ON t.id = p.team_id
`

func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var dob, image sql.NullString
	if err := scanner.Scan(&p.ID, &p.Name, &p.Team.ID, &p.Team.Name, &p.Role, &dob, &image); err != nil {
		return nil, err
	}
	p.DateOfBirth = nullString(dob)
	p.Image = nullString(image)
	return &p, nil
}

func (s *store) queryPlayers(ctx context.Context, q queryer, where string, args ...any) ([]Player, error) {
	rows, err := q.QueryContext(ctx, playerSelect+where, args...)
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// CreatePlayer inserts a new player into an existing team.
func (s *store) CreatePlayer(ctx context.Context, p NewPlayer) (*Player, error) {
	return s.createPlayer(ctx, s.db, p)
}

func (s *store) createPlayer(ctx context.Context, q queryer, p NewPlayer) (*Player, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("create player: %w: name is required", ErrInvalid)
	}
	role := p.Role
	if role == "" {
		role = RoleBatsman
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	var dob *string
	if p.DateOfBirth != nil {
		d := p.DateOfBirth.Format(dateLayout)
		dob = &d
	}

	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO players (name, team_id, role, date_of_birth, image)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`,
		p.Name, p.TeamID, role, dob, p.Image).Scan(&id)
	if err != nil {
		return nil, classify("create player", err)
	}
	log.Info("Created player", "playerID", id, "name", p.Name, "teamID", p.TeamID)
	return getPlayer(ctx, q, id)
}

// GetOrCreatePlayer returns the player with the given name in the given
// team, creating it when missing. Role and the optional fields only apply
// on creation.
func (s *store) GetOrCreatePlayer(ctx context.Context, p NewPlayer) (*Player, bool, error) {
	var (
		player  *Player
		created bool
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := s.queryPlayers(ctx, tx, "WHERE p.name = ? AND p.team_id = ? ORDER BY p.id LIMIT 1", p.Name, p.TeamID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			player = &existing[0]
			return nil
		}
		player, err = s.createPlayer(ctx, tx, p)
		created = err == nil
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return player, created, nil
}

// GetPlayer retrieves a single player by id.
func (s *store) GetPlayer(ctx context.Context, playerID int64) (*Player, error) {
	return getPlayer(ctx, s.db, playerID)
}

func getPlayer(ctx context.Context, q queryer, playerID int64) (*Player, error) {
	p, err := scanPlayer(q.QueryRowContext(ctx, playerSelect+"WHERE p.id = ?", playerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get player %d: %w", playerID, err)
	}
	return p, nil
}

// DeletePlayer removes a player along with their performances and balls.
func (s *store) DeletePlayer(ctx context.Context, playerID int64) error {
	return s.deleteByID(ctx, "players", playerID)
}

package stats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when the requested id has no matching row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when a create would violate a uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKeyMissing is returned when a referenced team, player or match does not exist.
	ErrForeignKeyMissing = errors.New("referenced record does not exist")
	// ErrInvalid is returned for values rejected at the write boundary.
	ErrInvalid = errors.New("invalid value")
)

// classify maps driver constraint errors onto the package's sentinel errors.
// The local driver reports typed errors; the remote libSQL client only
// reports the SQLite message text.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%s: %w: %v", op, ErrDuplicateKey, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%s: %w: %v", op, ErrForeignKeyMissing, err)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%s: %w: %v", op, ErrInvalid, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w: %v", op, ErrDuplicateKey, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%s: %w: %v", op, ErrForeignKeyMissing, err)
	case strings.Contains(msg, "CHECK constraint failed"), strings.Contains(msg, "NOT NULL constraint failed"):
		return fmt.Errorf("%s: %w: %v", op, ErrInvalid, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalid, field)
	}
	return nil
}

package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when no row matches.
var ErrNotFound = errors.New("not found")

// DuplicateError reports a unique-constraint violation. The toggle and
// uniqueness semantics lean on the database constraint rather than a
// check-then-act in application code, so this is how conflicts surface.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string {
	return "duplicate value for " + e.Constraint
}

const uniqueViolationCode = "23505"

// mapError converts driver-level errors into the package's sentinels.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return &DuplicateError{Constraint: pgErr.ConstraintName}
	}
	return err
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	var dup *DuplicateError
	return errors.As(err, &dup)
}

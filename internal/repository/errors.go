package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateKey reports that an insert lost a uniqueness race. Callers at
// the issuance and attendance insert sites translate it into the matching
// domain conflict instead of treating it as fatal.
var ErrDuplicateKey = errors.New("duplicate key")

const uniqueViolationCode = "23505"

// translateError maps driver-level unique violations onto ErrDuplicateKey.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicateKey
	}
	return err
}

// IsDuplicateKey reports whether err stems from a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUniqueViolation  = errors.New("unique constraint violation")
	ErrNotNullViolation = errors.New("not null constraint violation")
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// translateError maps driver specific constraint errors onto the repository sentinels.
// Errors it does not recognise are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName)
		case pgNotNullViolation:
			return fmt.Errorf("%w: %s", ErrNotNullViolation, pgErr.ColumnName)
		}
		return err
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	}

	// sqlite reports constraints only through the message text
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate"):
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	case strings.Contains(msg, "not null constraint"):
		return fmt.Errorf("%w: %v", ErrNotNullViolation, err)
	}
	return err
}

package errors

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes this service reacts to
const (
	pgErrUniqueViolation      = "23505"
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrLockNotAvailable     = "55P03"
	pgErrAdminShutdown        = "57P01"
	pgErrCannotConnectNow     = "57P03"
)

// ExtractPgError returns the *pgconn.PgError in err's chain, if any.
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == pgErrUniqueViolation
}

// IsTransientDBError reports whether a database error is contention or a restarting
// server, i.e. worth retrying right away.
func IsTransientDBError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable,
			pgErrAdminShutdown, pgErrCannotConnectNow:
			return true
		default:
			return false
		}
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "commit unexpectedly resulted in rollback") ||
		strings.Contains(s, "conn busy")
}

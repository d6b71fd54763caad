package httperr

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgQueryCanceled        = "57014"
	pgAdminShutdown        = "57P01"
	pgCannotConnectNow     = "57P03"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ConstraintName returns the violated constraint, if err came from Postgres.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsExclusionConflict reports a violation of the appointment overlap constraint.
func IsExclusionConflict(err error) bool {
	return pgCode(err) == pgExclusionViolation
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

// IsTransient reports store failures that are safe to retry as a whole.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	switch pgCode(err) {
	case pgSerializationFailure, pgDeadlockDetected, pgQueryCanceled, pgAdminShutdown, pgCannotConnectNow:
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		pgconn.Timeout(err)
}

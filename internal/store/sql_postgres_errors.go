package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells the repositories whether a failed statement is worth surfacing as
// a temporary outage and whether it violated a unique constraint.
type ErrorClassification int

const (
	// Permanent is the default for unrecognised errors, constraint
	// violations other than uniqueness, syntax errors and data exceptions.
	Permanent ErrorClassification = iota

	// Transient marks failures caused by the database being temporarily
	// unavailable (lost connection, deadlock rollback, startup/shutdown).
	Transient

	// UniqueViolation indicates that the statement conflicted with an
	// existing row on a unique column.
	UniqueViolation
)

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// pgClassifications lists the SQLSTATE codes that are not [Permanent].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
var pgClassifications = map[string]ErrorClassification{
	// Class 08: connection exception
	pgerrcode.ConnectionException:    Transient,
	pgerrcode.ConnectionDoesNotExist: Transient,
	pgerrcode.ConnectionFailure:      Transient,

	// Class 40: transaction rollback
	pgerrcode.TransactionRollback:  Transient,
	pgerrcode.SerializationFailure: Transient,
	pgerrcode.DeadlockDetected:     Transient,

	// Class 57: operator intervention
	pgerrcode.AdminShutdown:    Transient,
	pgerrcode.CrashShutdown:    Transient,
	pgerrcode.CannotConnectNow: Transient,

	// Class 23: integrity constraint violation
	pgerrcode.UniqueViolation: UniqueViolation,
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors returned
// by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not wrap a
// *pgconn.PgError are [Permanent].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Permanent
	}

	return pgClassifications[pgErr.Code]
}

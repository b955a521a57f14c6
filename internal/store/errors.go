package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup, update or delete targets a
	// record that does not exist.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when an INSERT or UPDATE would violate a
	// unique constraint (username, email, tag name or hardware address).
	ErrAlreadyExists = errors.New("record with the same unique value already exists")

	// ErrStalePasswordHash is returned by [UserRepository.UpdatePassword] when
	// the stored hash no longer matches the one the caller verified against,
	// meaning the password was rotated concurrently.
	ErrStalePasswordHash = errors.New("password hash was changed concurrently")

	// ErrTransient marks failures the driver reports as temporary
	// (connection loss, serialization failure, busy database). Statements are
	// never retried here; the caller decides.
	ErrTransient = errors.New("transient database failure")

	// ErrUnsupportedDriver is returned by [NewDB] for drivers other than
	// pgx and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

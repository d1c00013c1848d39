package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateKey is returned when an insert or save would give two users
	// the same email or the same username.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNoUserWasFound is returned when a save targets a user id that is not
	// in the collection.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnknownField is returned when a filter names a property that is not
	// part of the user document.
	ErrUnknownField = errors.New("unknown user document field")

	// ErrUnsupportedDSN is returned when no backend recognises the
	// connection string.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrStoreUnavailable wraps driver errors classified as transient:
	// connection loss, a busy database, a deadlock rollback.
	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan user rows")

	// ErrEncodingDocument is returned when a user cannot be converted to or
	// from its stored JSON document.
	ErrEncodingDocument = errors.New("failed to convert user document")
)

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned when no snapshot matches the requested
	// owner, vault or legacy owner prefix.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrBlobNotFound is returned when a blob lookup by (owner, vault, blob id)
	// produces an empty result set.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrFileSizeLimitExceeded is returned when a blob put declares a size that
	// is not positive or exceeds the per-file limit.
	ErrFileSizeLimitExceeded = errors.New("file size limit exceeded")

	// ErrVaultQuotaExceeded is returned when accepting a blob put would push
	// the vault usage (excluding the blob being replaced) over the vault limit.
	ErrVaultQuotaExceeded = errors.New("vault quota exceeded")

	// ErrCacheEntryNotFound is returned when the local snapshot cache holds no
	// row for the requested vault.
	ErrCacheEntryNotFound = errors.New("cache entry was not found")

	// ErrVaultStateNotFound is returned when no storage mode was recorded
	// for the requested vault yet.
	ErrVaultStateNotFound = errors.New("vault state was not found")

	// ErrVaultFileNotFound is returned when no durable vault file exists for
	// the requested vault.
	ErrVaultFileNotFound = errors.New("vault file was not found")

	// ErrObjectStore is returned (wrapped) when the S3-compatible object store
	// fails to read, write or delete blob content.
	ErrObjectStore = errors.New("object store error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

package engine

import "errors"

// Connection errors.
var (
	// ErrCannotOpen means the path did not resolve to an openable database.
	ErrCannotOpen = errors.New("cannot open database file")
	// ErrInvalidStructure means the file opened but failed the liveness probe.
	ErrInvalidStructure = errors.New("invalid database structure")
	// ErrNotLoaded means no database is currently open on the engine.
	ErrNotLoaded = errors.New("no database loaded")
)

// Load errors.
var (
	// ErrNoSuchTable means the named table is absent from the catalog.
	ErrNoSuchTable = errors.New("no such table")
	// ErrQueryFailed means the underlying scan or catalog query failed.
	ErrQueryFailed = errors.New("query failed")
)

// Replace errors. A replace either fully succeeds or leaves the table
// untouched; the error says which stage refused.
var (
	// ErrTxBegin means the backing store refused to start a transaction.
	ErrTxBegin = errors.New("transaction start failed")
	// ErrWriteFailed means a delete or insert failed and was rolled back.
	ErrWriteFailed = errors.New("write failed")
	// ErrCommitFailed means the final commit failed and was rolled back.
	ErrCommitFailed = errors.New("commit failed")
)

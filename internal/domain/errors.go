package domain

import "errors"

// Sentinel error kinds shared by the session store, the search engine and the
// extraction adapter. Components return these (usually wrapped with context via
// fmt.Errorf and %w) and never log-and-swallow; only the HTTP layer converts
// them into status codes.
var (
	// ErrSessionNotFound is returned for any operation against a session id
	// that was never created or was already ended.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmbedding is returned when the embedding provider fails (timeout,
	// malformed response, quota). Retryable by the caller.
	ErrEmbedding = errors.New("embedding failed")

	// ErrExtraction is returned for unreadable or malformed input documents.
	// Not retryable without a different input.
	ErrExtraction = errors.New("extraction failed")

	// ErrDimensionMismatch signals a query/candidate vector length mismatch.
	// This is an internal contract violation, fatal to the request.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrInvalidInput is returned when a required field is missing or empty
	// at the boundary.
	ErrInvalidInput = errors.New("invalid input")
)

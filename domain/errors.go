// ABOUTME: Domain-level sentinel errors for the discussion fetcher
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Content-related errors
var (
	// ErrContentNotFound indicates the content item does not exist. Nothing is persisted for it.
	ErrContentNotFound = errors.New("content item not found")

	// ErrInvalidContentID indicates the content id is not a valid UUID
	ErrInvalidContentID = errors.New("invalid content id")
)

// Source errors
var (
	// ErrRedditClientNotConfigured indicates no Reddit credentials were provided.
	// Retrying cannot fix a missing credential.
	ErrRedditClientNotConfigured = errors.New("reddit client not configured")

	// ErrSubmissionNotFound indicates the forum returned no submission for the id
	ErrSubmissionNotFound = errors.New("submission not found")
)

// Validation errors
var (
	// ErrInvalidRequest indicates the request format is invalid
	ErrInvalidRequest = errors.New("invalid request format")
)

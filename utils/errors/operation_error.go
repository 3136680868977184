// ABOUTME: OperationError is a failure classified as retryable or not at the point it happened
// ABOUTME: The ingestion orchestrator reads the verdict with errors.As
package errors

import (
	"fmt"
	"time"
)

// OperationError wraps errors with the operation name and a retry verdict
type OperationError struct {
	Operation  string    `json:"operation"`
	Timestamp  time.Time `json:"timestamp"`
	Underlying error     `json:"-"`
	Retryable  bool      `json:"retryable"`
}

// NewOperationError creates a new operation error
func NewOperationError(operation string, err error, retryable bool) *OperationError {
	return &OperationError{
		Operation:  operation,
		Timestamp:  time.Now(),
		Underlying: err,
		Retryable:  retryable,
	}
}

// Error implements the error interface
func (oe *OperationError) Error() string {
	return fmt.Sprintf("operation '%s' failed: %v", oe.Operation, oe.Underlying)
}

// Unwrap returns the underlying error for error unwrapping
func (oe *OperationError) Unwrap() error {
	return oe.Underlying
}

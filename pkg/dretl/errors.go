package dretl

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := pipeline.Run(ctx, config)
//	if errors.Is(err, dretl.ErrTableExists) {
//	    // destination already populated by an earlier run
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrColumnNotFound indicates a required column is absent from an input.
	ErrColumnNotFound = errors.New("column not found")

	// ErrShapeMismatch indicates a row's category tokens disagree with the label schema.
	ErrShapeMismatch = errors.New("category shape mismatch")

	// ErrInvalidIndicator indicates a category token does not end in a digit.
	ErrInvalidIndicator = errors.New("invalid indicator value")

	// ErrKeyViolation indicates a missing or duplicated join key rejected by policy.
	ErrKeyViolation = errors.New("join key violation")

	// ErrTableExists indicates the destination table already exists under the create policy.
	ErrTableExists = errors.New("table already exists")

	// ErrSchemaMismatch indicates an existing destination table has different columns.
	ErrSchemaMismatch = errors.New("destination schema mismatch")

	// ErrApprovalDenied indicates the user denied approval for the operation.
	ErrApprovalDenied = errors.New("approval denied")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrColumnNotFound),
		errors.Is(err, ErrShapeMismatch),
		errors.Is(err, ErrInvalidIndicator),
		errors.Is(err, ErrKeyViolation):
		return ExitDataError
	case errors.Is(err, ErrTableExists), errors.Is(err, ErrSchemaMismatch):
		return ExitDestinationConflict
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"flag needs an argument",
	} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// Package entities contains core domain values and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstreamFetch is returned for any failed call to the GitHub API.
	// The cause is logged where it happens and never propagated.
	ErrUpstreamFetch = errors.New("fetch failed")
)

// ValidationError carries the caller-facing message of a rejected request.
type ValidationError struct {
	Message string
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold.
func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// Operation names the usecase an upstream failure happened in.
type Operation string

const (
	// OpOverview is the profile and repository listing of the account.
	OpOverview Operation = "overview"
	// OpRepository is the lookup of a single repository.
	OpRepository Operation = "repository"
	// OpCreateIssue is the creation of an issue.
	OpCreateIssue Operation = "create_issue"
)

// FetchError tags an upstream failure with the operation and resource it
// belongs to.
type FetchError struct {
	Op       Operation
	Resource string
}

func (e *FetchError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("%s: %s", e.Op, ErrUpstreamFetch)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Resource, ErrUpstreamFetch)
}

// Unwrap makes errors.Is(err, ErrUpstreamFetch) hold.
func (e *FetchError) Unwrap() error { return ErrUpstreamFetch }

package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid input: a bad path list, profile or flag value.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates the output root or a template directory is not accessible.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a profile, template set, or file was not found.
	ErrNotFound = errors.New("not found")
)

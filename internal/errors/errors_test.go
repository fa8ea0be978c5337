//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrPermission, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "path entry \"guides/\" has a trailing slash",
		Location: ".mdxgen.yaml",
		Field:    "profiles.team.paths",
		Context:  map[string]string{"Profile": "team", "Entry": "guides/"},
		Hint:     "Remove the trailing slash",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: validation failed")
	assert.Contains(t, out, "Location: .mdxgen.yaml")
	assert.Contains(t, out, "Field: profiles.team.paths")
	assert.Contains(t, out, "Profile: team")
	assert.Contains(t, out, "trailing slash")
	assert.Contains(t, out, "Hint: Remove the trailing slash")
	assert.Less(t, strings.Index(out, "Entry:"), strings.Index(out, "Profile:"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("unknown profile \"full\"", "", "profile", "Use minimal or complete")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "profile", detail.Field)
	assert.Equal(t, "Use minimal or complete", detail.Hint)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("template directory does not exist", "./tmpl", "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, err.Error(), "Hint:")
}

func TestNewPermissionError(t *testing.T) {
	err := NewPermissionError("cannot write to output root", "/docs", "Check directory permissions")
	assert.ErrorIs(t, err, ErrPermission)
	assert.Contains(t, err.Error(), "Location: /docs")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "path list check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "path list check failed")
}

func TestExitError(t *testing.T) {
	inner := NewValidationError("bad", "", "", "")
	exitErr := &ExitError{Code: 2, Err: inner}

	assert.Equal(t, inner.Error(), exitErr.Error())
	assert.ErrorIs(t, exitErr, ErrValidation)

	wrapped := fmt.Errorf("running: %w", exitErr)
	var got *ExitError
	require.True(t, errors.As(wrapped, &got))
	assert.Equal(t, 2, got.Code)

	assert.Equal(t, "exit status 130", (&ExitError{Code: 130}).Error())
}

func TestIsPrinted(t *testing.T) {
	assert.False(t, IsPrinted(errors.New("plain")))
	assert.False(t, IsPrinted(&ExitError{Code: 1, Err: errors.New("x")}))
	assert.True(t, IsPrinted(fmt.Errorf("wrapped: %w", &ExitError{Code: 1, Printed: true})))
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/awoplatform/mdxgen/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			wantCode: ExitSuccess,
		},
		{
			name:     "validation error",
			err:      oerrors.ErrValidation,
			wantCode: ExitValidationError,
		},
		{
			name:     "wrapped validation error",
			err:      oerrors.Wrap(oerrors.ErrValidation, "path list check failed"),
			wantCode: ExitValidationError,
		},
		{
			name:     "detail validation error",
			err:      oerrors.NewValidationError("unknown profile", "", "profile", ""),
			wantCode: ExitValidationError,
		},
		{
			name:     "not found error",
			err:      oerrors.ErrNotFound,
			wantCode: ExitNotFound,
		},
		{
			name:     "permission error",
			err:      oerrors.ErrPermission,
			wantCode: ExitPermissionDenied,
		},
		{
			name:     "cancelled context",
			err:      fmt.Errorf("interrupted: %w", context.Canceled),
			wantCode: ExitInterrupted,
		},
		{
			name:     "exit error with custom code",
			err:      &oerrors.ExitError{Code: 42, Err: errors.New("custom")},
			wantCode: 42,
		},
		{
			name:     "unknown error returns general error",
			err:      errors.New("unknown error"),
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExitCodeFromError(tt.err)
			assert.Equal(t, tt.wantCode, got)
		})
	}
}

func TestWithExitCode(t *testing.T) {
	assert.NoError(t, withExitCode(nil))

	err := withExitCode(oerrors.ErrNotFound)
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitNotFound, exitErr.Code)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	existing := &oerrors.ExitError{Code: 7, Err: errors.New("x")}
	assert.Same(t, existing, withExitCode(existing))
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitGeneralError)
	assert.Equal(t, 2, ExitValidationError)
	assert.Equal(t, 3, ExitNotFound)
	assert.Equal(t, 4, ExitPermissionDenied)
	assert.Equal(t, 130, ExitInterrupted)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Interrupted", ExitCodeName(ExitInterrupted))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}

package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithMessageKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithMessage("Name is required")

	assert.Equal(t, "Name is required", err.Message())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.False(t, stderrors.Is(err, ErrInvalidID))
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrPackageNotFound.WrapMessage("load package")

	assert.True(t, stderrors.Is(wrapped, ErrPackageNotFound))

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to create stay")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "connection refused", err.Message())
	assert.Equal(t, "failed to create stay", err.Details())
	assert.True(t, stderrors.Is(err, cause))
}

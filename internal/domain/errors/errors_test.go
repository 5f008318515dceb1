package errors

import (
	"net/http"
	"testing"

	"holocron/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrFavoriteNotFound.WrapMessage("planet 5 for user 1")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "FAVORITE_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrFavoriteNotFound))
}

func TestBaseError_WithDetailsDoesNotMutate(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("id is required")

	assert.Equal(t, "id is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list planets")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to list planets", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}

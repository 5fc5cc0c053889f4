package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"sms/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrDuplicateEmail.WrapMessage("email already exists")

	assert.True(t, errors.Is(err, ErrDuplicateEmail))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "DUPLICATE_EMAIL", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("email is required")

	assert.Equal(t, "email is required", err.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), err.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details(), "original error must stay untouched")
}

func TestDatabaseExecuteError_IsNotAnAuthFailure(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.Wrap(NewDatabaseExecuteError(cause, "failed to find account"), "login")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
	assert.True(t, errors.Is(err, cause))
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := errors.Wrap(ErrPasswordStrength.WithDetails("too short"), "register")

	assert.True(t, errors.Is(err, ErrPasswordStrength))
	assert.False(t, errors.Is(err, ErrValidationFailed))
}

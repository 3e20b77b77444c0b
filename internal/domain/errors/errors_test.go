package errors

import (
	"net/http"
	"testing"

	"todoez/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBusinessFailuresAreBadRequests(t *testing.T) {
	for _, err := range []*BaseError{
		ErrEmailExists,
		ErrEmailNotExists,
		ErrUserNotFound,
		ErrWrongPassword,
		ErrNoPermission,
		ErrUserAlreadyMember,
		ErrTeamNotFound,
		ErrProjectNotFound,
		ErrSprintNotFound,
		ErrTaskNotFound,
		ErrCommentNotFound,
		ErrNoteNotFound,
		ErrDeviceNotFound,
	} {
		assert.Equal(t, http.StatusBadRequest, err.HTTPCode(), err.ErrorCode())
	}
}

func TestTokenFailures(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrTokenMissing.HTTPCode())
	assert.Equal(t, http.StatusForbidden, ErrCannotVerifyToken.HTTPCode())
	assert.Equal(t, http.StatusForbidden, ErrAccessDenied.HTTPCode())
}

func TestBaseError_Wrapping(t *testing.T) {
	wrapped := ErrTeamNotFound.WrapMessage("team 42")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "TEAM_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "detail", ErrTeamNotFound.WithDetails("detail").Details())
	assert.Empty(t, ErrTeamNotFound.Details())
}

package errors

import (
	"net/http"

	"todoez/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrEmailExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_EXISTS",
		"Email already exists",
		"",
	)

	ErrEmailNotExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_NOT_EXISTS",
		"Email does not exists",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserNotVerified = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_VERIFIED",
		"User has not verified their email",
		"",
	)

	ErrAccountNotVerified = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_NOT_VERIFIED",
		"Account is not verify",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusBadRequest,
		"WRONG_PASSWORD",
		"Password is not correct",
		"",
	)

	ErrSamePassword = NewBaseError(
		http.StatusBadRequest,
		"SAME_PASSWORD",
		"Your new password is match to old password",
		"",
	)

	ErrGoogleAccount = NewBaseError(
		http.StatusBadRequest,
		"GOOGLE_ACCOUNT",
		"This email use for google signin",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Token-related errors
	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Token is required",
		"",
	)

	ErrCannotVerifyToken = NewBaseError(
		http.StatusForbidden,
		"CANNOT_VERIFY_TOKEN",
		"Can not verify token",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"Access denied",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired token",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue token",
		"",
	)

	// OAuth-related errors
	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Invalid google token",
		"",
	)

	// Mail-related errors
	ErrMailDeliveryFailed = NewBaseError(
		http.StatusInternalServerError,
		"MAIL_DELIVERY_FAILED",
		"Failed to send email",
		"",
	)

	// Membership-related errors
	ErrNoPermission = NewBaseError(
		http.StatusBadRequest,
		"NO_PERMISSION",
		"No permission",
		"",
	)

	ErrUserAlreadyMember = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_MEMBER",
		"User already exists",
		"",
	)

	ErrMemberNotFound = NewBaseError(
		http.StatusBadRequest,
		"MEMBER_NOT_FOUND",
		"Member does not exists",
		"",
	)

	ErrCannotRemoveCreator = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_REMOVE_CREATOR",
		"Can not delete team creator",
		"",
	)

	// Resource-related errors
	ErrTeamNotFound = NewBaseError(
		http.StatusBadRequest,
		"TEAM_NOT_FOUND",
		"Team not found",
		"",
	)

	ErrProjectNotFound = NewBaseError(
		http.StatusBadRequest,
		"PROJECT_NOT_FOUND",
		"Project not found",
		"",
	)

	ErrSprintNotFound = NewBaseError(
		http.StatusBadRequest,
		"SPRINT_NOT_FOUND",
		"Sprint does not exists",
		"",
	)

	ErrTaskNotFound = NewBaseError(
		http.StatusBadRequest,
		"TASK_NOT_FOUND",
		"Task does not exists",
		"",
	)

	ErrAssigneeNotMember = NewBaseError(
		http.StatusBadRequest,
		"ASSIGNEE_NOT_MEMBER",
		"Assignee is not a project member",
		"",
	)

	ErrReporterNotMember = NewBaseError(
		http.StatusBadRequest,
		"REPORTER_NOT_MEMBER",
		"Reporter is not a project member",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusBadRequest,
		"COMMENT_NOT_FOUND",
		"Comment does not exists",
		"",
	)

	ErrNoteNotFound = NewBaseError(
		http.StatusBadRequest,
		"NOTE_NOT_FOUND",
		"Note does not exists",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDeviceOwnership = NewBaseError(
		http.StatusForbidden,
		"DEVICE_OWNERSHIP_VIOLATION",
		"You do not own this device",
		"",
	)

	// Upload-related errors
	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"Unsupported avatar image type",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"Avatar image is too large",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

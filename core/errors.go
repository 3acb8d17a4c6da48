package core

import (
	"errors"
	"strings"
)

// Account errors
var (
	ErrAccountExists      = errors.New("an account with this email already exists") // 409 Conflict
	ErrAccountNotFound    = errors.New("account not found")                         // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid email, password, or role")          // 401 Unauthorized
)

// Session errors
var (
	ErrNoActiveSession = errors.New("no active session")            // 401
	ErrSessionNotFound = errors.New("no persisted session")         // not user-facing
	ErrForbidden       = errors.New("not allowed for this account") // 403
)

// Catalog errors
var (
	ErrListingNotFound     = errors.New("internship not found")          // 404
	ErrListingClosed       = errors.New("internship is no longer open")  // 409
	ErrAlreadyApplied      = errors.New("already applied to this internship")
	ErrApplicationNotFound = errors.New("application not found") // 404
	ErrInvalidTransition   = errors.New("invalid application status change")
	ErrCourseNotFound      = errors.New("course not found") // 404
	ErrAlreadyEnrolled     = errors.New("already enrolled in this course")
	ErrNotEnrolled         = errors.New("not enrolled in this course")
)

// Config errors (library misconfiguration)
var (
	ErrStorageRequired = errors.New("storage adapter is required") // 500
)

// ValidationError carries the ordered list of human-readable field
// messages produced by a ValidationPolicy. It is always recoverable by
// the user correcting their input.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

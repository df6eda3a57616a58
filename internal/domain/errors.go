package domain

import (
	"errors"
	"fmt"
)

// The four error kinds surfaced to callers. Specific errors below wrap one of
// these so callers can match with errors.Is on either level.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrJobNotFound          = fmt.Errorf("job %w", ErrNotFound)
	ErrApplicationNotFound  = fmt.Errorf("application %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)

	ErrDuplicateApplication = fmt.Errorf("%w: already applied to this job", ErrConflict)
	ErrJobNotOpen           = fmt.Errorf("%w: job is not open for applications", ErrConflict)
	ErrApplicationResolved  = fmt.Errorf("%w: application has already been resolved", ErrConflict)
	ErrInvalidTransition    = fmt.Errorf("%w: status transition not allowed", ErrConflict)

	ErrInvalidStatus      = fmt.Errorf("%w: unknown application status", ErrInvalidInput)
	ErrMissingField       = fmt.Errorf("%w: required application field missing", ErrInvalidInput)
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrForbidden)
)

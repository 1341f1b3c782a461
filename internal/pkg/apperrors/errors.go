package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = fmt.Errorf("user %w", ErrResourceNotFound)
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Questionnaire validation errors. Each one also matches ErrValidationFailed.
var (
	ErrEmptyInput    = fmt.Errorf("%w: empty input", ErrValidationFailed)
	ErrMissingFields = fmt.Errorf("%w: missing fields", ErrValidationFailed)
	ErrInvalidEnum   = fmt.Errorf("%w: invalid enum value", ErrValidationFailed)
	ErrInvalidRange  = fmt.Errorf("%w: value out of range", ErrValidationFailed)
)

// Classifier errors
var (
	ErrPredictionExecutionFailed = errors.New("prediction execution failed")
	ErrNoPredictionOutput        = errors.New("no prediction output")
	ErrMalformedPredictionOutput = errors.New("malformed prediction output")
)

// Session persistence errors
var (
	ErrIncompleteSaveData       = errors.New("incomplete save data")
	ErrIncompleteAnswer         = errors.New("incomplete answer")
	ErrIncompleteRecommendation = errors.New("incomplete recommendation")
	ErrUnknownMajor             = errors.New("unknown major")
)

// Lookup errors
var (
	ErrSessionNotFound = fmt.Errorf("session %w", ErrResourceNotFound)
	ErrMajorNotFound   = fmt.Errorf("major %w", ErrResourceNotFound)
)

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// ValidationError describes the first questionnaire rule that failed.
type ValidationError struct {
	// Kind is one of ErrEmptyInput, ErrMissingFields, ErrInvalidEnum, ErrInvalidRange
	Kind          error
	Field         string
	Allowed       []string
	MissingFields []string
	Message       string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewEnumError builds an ErrInvalidEnum failure for field with its accepted values.
func NewEnumError(field string, allowed []string) *ValidationError {
	var msg string
	if len(allowed) == 2 {
		msg = fmt.Sprintf("%s must be %q or %q", field, allowed[0], allowed[1])
	} else {
		msg = fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", "))
	}
	return &ValidationError{
		Kind:    ErrInvalidEnum,
		Field:   field,
		Allowed: allowed,
		Message: msg,
	}
}

// PredictionError carries diagnostics from a failed classifier run.
type PredictionError struct {
	// Kind is one of ErrPredictionExecutionFailed, ErrNoPredictionOutput, ErrMalformedPredictionOutput
	Kind      error
	Details   string
	RawOutput []string
	// Cause is the underlying failure, if any (exit error, context error, breaker state)
	Cause error
}

func (e *PredictionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Details)
	}
	return e.Kind.Error()
}

func (e *PredictionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// SaveError reports why a session save was aborted; Position is 1-based when the
// failure belongs to a specific answer or recommendation entry.
type SaveError struct {
	Kind      error
	Position  int
	MajorName string
}

func (e *SaveError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrUnknownMajor):
		return fmt.Sprintf("major %q not found", e.MajorName)
	case errors.Is(e.Kind, ErrIncompleteAnswer):
		return fmt.Sprintf("answer #%d is incomplete", e.Position)
	case errors.Is(e.Kind, ErrIncompleteRecommendation):
		return fmt.Sprintf("recommendation #%d is incomplete", e.Position)
	default:
		return e.Kind.Error()
	}
}

func (e *SaveError) Unwrap() error {
	return e.Kind
}

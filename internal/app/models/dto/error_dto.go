package dto

import (
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_006"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_008"
	ErrorCodeForbidden          ErrorCode = "AUTH_009"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeEmptyInput       ErrorCode = "VAL_002"
	ErrorCodeMissingFields    ErrorCode = "VAL_003"
	ErrorCodeInvalidEnum      ErrorCode = "VAL_004"
	ErrorCodeInvalidRange     ErrorCode = "VAL_005"
	ErrorCodeBadRequest       ErrorCode = "VAL_006"

	// Prediction errors
	ErrorCodePredictionFailed    ErrorCode = "PRD_001"
	ErrorCodeNoPredictionOutput  ErrorCode = "PRD_002"
	ErrorCodeMalformedPrediction ErrorCode = "PRD_003"

	// Session persistence errors
	ErrorCodeIncompleteSaveData       ErrorCode = "SES_001"
	ErrorCodeIncompleteAnswer         ErrorCode = "SES_002"
	ErrorCodeIncompleteRecommendation ErrorCode = "SES_003"
	ErrorCodeUnknownMajor             ErrorCode = "SES_004"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorDetail collects what goes into an error response
type ErrorDetail struct {
	Code          ErrorCode
	Message       string
	Field         string
	Details       interface{}
	MissingFields []string
	RawOutput     []string
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success       bool        `json:"success" example:"false"`
	Error         string      `json:"error" example:"Gender must be \"Laki-laki\" or \"Perempuan\""`
	Code          ErrorCode   `json:"code" example:"VAL_004"`
	Field         string      `json:"field,omitempty" example:"Gender"`
	Details       interface{} `json:"details,omitempty"`
	MissingFields []string    `json:"missingFields,omitempty"`
	RawOutput     []string    `json:"rawOutput,omitempty"`
	Timestamp     time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// WithMissingFields lists the absent questionnaire fields
func (e *ErrorDetail) WithMissingFields(fields []string) *ErrorDetail {
	e.MissingFields = fields
	return e
}

// WithRawOutput attaches captured classifier output (diagnostics only)
func (e *ErrorDetail) WithRawOutput(lines []string) *ErrorDetail {
	e.RawOutput = lines
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(detail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:       false,
		Error:         detail.Message,
		Code:          detail.Code,
		Field:         detail.Field,
		Details:       detail.Details,
		MissingFields: detail.MissingFields,
		RawOutput:     detail.RawOutput,
		Timestamp:     time.Now(),
	}
}

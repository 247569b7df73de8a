package dto

import "time"

// ErrorCode is a stable machine-readable identifier for an error condition
type ErrorCode string

const (
	// Authentication / authorization
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeTokenExpired       ErrorCode = "AUTH_002"
	ErrorCodeTokenInvalid       ErrorCode = "AUTH_003"
	ErrorCodeAccountInactive    ErrorCode = "AUTH_004"
	ErrorCodeForbidden          ErrorCode = "AUTH_005"

	// Validation
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "VAL_002"

	// Resources
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeResourceExists   ErrorCode = "RES_002"
	ErrorCodeConflict         ErrorCode = "RES_003"

	// Server
	ErrorCodeInternalError ErrorCode = "SRV_001"
)

// ErrorDetail describes a single error condition in a response
type ErrorDetail struct {
	Code    ErrorCode         `json:"code" example:"VAL_001"`
	Message string            `json:"message" example:"Validation failed"`
	Details map[string]string `json:"details,omitempty"`
}

// NewErrorDetail creates an ErrorDetail with the given code and message
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithDetails attaches field-level context to the error detail
func (e *ErrorDetail) WithDetails(details map[string]string) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse wraps an ErrorDetail in the standard envelope
func NewErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   detail.Message,
		Error:     detail,
		Timestamp: time.Now(),
	}
}

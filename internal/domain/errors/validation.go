package errors

import "net/http"

// FieldError describes a single failed validation rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of failed rules for a request,
// implementing the AppError interface
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a validation error from per-field failures
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return ErrValidationFailed.Message()
	}

	return e.fields[0].Message
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return ""
}

// Fields returns the per-field failures in declaration order
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

package domain

import "net/http"

// FieldError describes a single invalid request field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// AppError is the failure type every pipeline raises. The Fiber error
// handler translates it into a status code and JSON body; anything that is
// not an AppError becomes a 500 with a generic body.
type AppError struct {
	Status  int
	Code    string
	Message string
	Details []FieldError
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// NewValidationError reports malformed or missing input with per-field
// messages.
func NewValidationError(details []FieldError) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: "ValidationError", Details: details}
}

// NewInvalidPayload reports a request body that could not be decoded at all.
func NewInvalidPayload() *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: "InvalidPayload"}
}

// NewUnauthorized covers missing/invalid/expired tokens and bad credentials.
// The message is intentionally generic for login failures so that an unknown
// email and a wrong password are indistinguishable.
func NewUnauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: "Unauthorized", Message: message}
}

// NewConflict reports a uniqueness violation.
func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Code: "Conflict", Message: message}
}

// NewNotFound reports a missing row. Ownership misses use this too, so a
// foreign row and a nonexistent row produce the same response.
func NewNotFound() *AppError {
	return &AppError{Status: http.StatusNotFound, Code: "NotFound"}
}

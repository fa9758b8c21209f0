package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// AppError is the application error carried from the service layer to the
// HTTP boundary.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	ErrNotAuthorized    = New(CodeNotAuthorized, "Invalid username or password", http.StatusUnauthorized)
	ErrInvalidToken     = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrForbidden        = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Helpers for errors that carry resource-specific messages.

func NotFound(resource, message string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s: %s", resource, message), http.StatusNotFound)
}

func AlreadyExists(resource, message string) *AppError {
	return New(CodeAlreadyExists, fmt.Sprintf("%s: %s", resource, message), http.StatusConflict)
}

func InvalidArgument(message string) *AppError {
	return New(CodeInvalidArgument, message, http.StatusBadRequest)
}

func ReferentialIntegrity(message string) *AppError {
	return New(CodeReferentialIntegrity, message, http.StatusConflict)
}

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

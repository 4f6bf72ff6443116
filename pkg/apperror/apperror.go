package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel categories. Handlers and middleware branch on these with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrNoProfile    = errors.New("no profile")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream failure")
	ErrInternal     = errors.New("internal server error")
)

// FieldError is one entry of the validation error array returned to clients.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Fields    []FieldError
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

// NewNotFound renders as 404 {msg: "<resource> not found"}.
func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

// NewNoProfile renders as 400 {msg: "There is no profile for this user"}.
// The /me endpoint historically answered 400 instead of 404 for a missing
// profile; that status is kept as-is.
func NewNoProfile(identifier string) *AppError {
	details := fmt.Sprintf("no profile exists for user '%s'", identifier)
	return NewAppError(ErrNoProfile, "There is no profile for this user", details, nil)
}

// NewValidation carries the field-level error list for 400 responses.
func NewValidation(fields []FieldError) *AppError {
	return &AppError{
		BaseError: ErrInvalidInput,
		Message:   "Invalid input provided",
		Fields:    fields,
	}
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

func NewUnauthorized(details string, err error) *AppError {
	return NewAppError(ErrUnauthorized, "Invalid credentials", details, err)
}

// NewUpstream hides the external failure behind a generic message; the cause
// is kept for logging only.
func NewUpstream(msg, details string, err error) *AppError {
	return NewAppError(ErrUpstream, msg, details, err)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "Server Error", details, err)
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNoProfile) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

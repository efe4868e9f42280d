package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError is returned before any request is sent when caller input
// breaks one of the platform's documented constraints.
type ValidationError struct {
	Message string
	Code    int
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
		Code:    http.StatusBadRequest,
	}
}

// APIError is returned when a request was attempted and the transport or the
// remote platform reported a failure.
type APIError struct {
	Message string
	Code    int
	Cause   error
}

func (e *APIError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("api error (%d): %s", e.Code, e.Message)
	}
	return "api error: " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether repeating the same call may succeed.
func (e *APIError) Retryable() bool {
	return e.Code == 0 || e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

type statusCoder interface {
	HTTPStatus() int
}

func WrapAPIError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	code := 0
	var sc statusCoder
	if errors.As(err, &sc) {
		code = sc.HTTPStatus()
	}

	return &APIError{
		Message: err.Error(),
		Code:    code,
		Cause:   err,
	}
}

func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

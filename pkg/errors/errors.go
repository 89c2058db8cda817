// Package errors provides coded errors for tinge's peripheral
// surfaces. The compose path itself never returns errors; these codes
// cover style-sheet loading and the CLI.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category for stable testing.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Style-sheet errors
	ErrSheetRead    ErrorCode = "SHEET_READ"
	ErrSheetParse   ErrorCode = "SHEET_PARSE"
	ErrSheetInvalid ErrorCode = "SHEET_INVALID"
)

// TingeError is a structured error with a code and optional details.
type TingeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *TingeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *TingeError) Unwrap() error {
	return e.Wrapped
}

// Is matches on the error code so tests can assert categories.
func (e *TingeError) Is(target error) bool {
	var targetErr *TingeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a TingeError with the given code and message.
func New(code ErrorCode, message string) *TingeError {
	return &TingeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a TingeError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *TingeError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *TingeError {
	if err == nil {
		return nil
	}
	return &TingeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TingeError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail attaches a key/value detail and returns the error.
func (e *TingeError) WithDetail(key string, value interface{}) *TingeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var tingeErr *TingeError
	if errors.As(err, &tingeErr) {
		return tingeErr.Code == code
	}
	return false
}

// GetErrorCode extracts the code from err, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var tingeErr *TingeError
	if errors.As(err, &tingeErr) {
		return tingeErr.Code
	}
	return ErrUnknown
}

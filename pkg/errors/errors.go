package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Terminal errors
	ErrTerminalUnavailable ErrorCode = "TERMINAL_UNAVAILABLE"
	ErrTerminalWrite       ErrorCode = "TERMINAL_WRITE"
	ErrTerminalRead        ErrorCode = "TERMINAL_READ"

	// Prompt lifecycle errors
	ErrCancelled     ErrorCode = "CANCELLED"
	ErrSessionClosed ErrorCode = "SESSION_CLOSED"

	// Input errors (confined to a widget, never propagated upward)
	ErrValidationRejected ErrorCode = "VALIDATION_REJECTED"
	ErrDecodeAnomaly      ErrorCode = "DECODE_ANOMALY"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrThemeLoad  ErrorCode = "THEME_LOAD"
	ErrThemeParse ErrorCode = "THEME_PARSE"
)

// PromptError represents a structured error with code and details
type PromptError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PromptError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PromptError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PromptError) Is(target error) bool {
	var targetErr *PromptError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PromptError with the given code and message
func New(code ErrorCode, message string) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PromptError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PromptError {
	return &PromptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PromptError
func Wrap(err error, code ErrorCode, message string) *PromptError {
	if err == nil {
		return nil
	}
	return &PromptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PromptError {
	if err == nil {
		return nil
	}
	return &PromptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PromptError) WithDetail(key string, value interface{}) *PromptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PromptError) WithDetails(details map[string]interface{}) *PromptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var promptErr *PromptError
	if errors.As(err, &promptErr) {
		return promptErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PromptError
func GetErrorCode(err error) ErrorCode {
	var promptErr *PromptError
	if errors.As(err, &promptErr) {
		return promptErr.Code
	}
	return ErrUnknown
}

// IsCancelled reports whether err represents a user cancellation. Callers use
// this to tell "user declined" apart from "environment broken".
func IsCancelled(err error) bool {
	return IsErrorCode(err, ErrCancelled)
}

// IsTerminalUnavailable reports whether err means no usable terminal exists.
func IsTerminalUnavailable(err error) bool {
	return IsErrorCode(err, ErrTerminalUnavailable)
}

// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/parley-go/parley/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "cancelled_error",
			code:    errors.ErrCancelled,
			message: "prompt cancelled",
			wantStr: "[CANCELLED] prompt cancelled",
		},
		{
			name:    "terminal_unavailable_error",
			code:    errors.ErrTerminalUnavailable,
			message: "stdin is not a terminal",
			wantStr: "[TERMINAL_UNAVAILABLE] stdin is not a terminal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrThemeParse,
			format:  "unknown color: %s",
			args:    []interface{}{"ultraviolet"},
			wantMsg: "unknown color: ultraviolet",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrTerminalWrite,
			format:  "wrote %d of %d bytes",
			args:    []interface{}{3, 12},
			wantMsg: "wrote 3 of 12 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrTerminalRead, "read failed")

		if err.Code != errors.ErrTerminalRead {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrTerminalRead)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[TERMINAL_READ] read failed: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrTerminalRead, "read failed")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrThemeLoad, "cannot load theme").
		WithDetail("path", "/home/u/.config/parley/theme.yaml").
		WithDetail("theme", "clack")

	if err.Details["path"] != "/home/u/.config/parley/theme.yaml" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/home/u/.config/parley/theme.yaml")
	}

	if err.Details["theme"] != "clack" {
		t.Errorf("WithDetail() theme = %v, want %v", err.Details["theme"], "clack")
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"sequence": "\x1b[9Z",
		"length":   4,
		"offset":   17,
	}

	err := errors.New(errors.ErrDecodeAnomaly, "unrecognized escape sequence").
		WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrCancelled, "error 1")
	err2 := errors.New(errors.ErrCancelled, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with PromptError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrCancelled, "cancelled"),
			code:     errors.ErrCancelled,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrCancelled, "cancelled"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrTerminalWrite, "flush failed"),
			code:     errors.ErrTerminalWrite,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrCancelled,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrCancelled,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "prompt_error",
			err:      errors.New(errors.ErrSessionClosed, "session closed"),
			expected: errors.ErrSessionClosed,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsCancelled(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "cancelled_error",
			err:      errors.New(errors.ErrCancelled, "prompt cancelled"),
			expected: true,
		},
		{
			name:     "wrapped_cancelled_error",
			err:      errors.Wrap(errors.New(errors.ErrCancelled, "prompt cancelled"), errors.ErrInternal, "run failed"),
			expected: true,
		},
		{
			name:     "other_error",
			err:      errors.New(errors.ErrTerminalRead, "read failed"),
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsCancelled(tt.err); got != tt.expected {
				t.Errorf("IsCancelled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	// Create a chain of errors
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrTerminalRead, "cannot read input")
	sessionErr := errors.Wrap(readErr, errors.ErrSessionClosed, "session aborted")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(sessionErr, errors.ErrSessionClosed) {
			t.Error("Top level should have ErrSessionClosed code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var promptErr *errors.PromptError
		if stderrors.As(sessionErr.Unwrap(), &promptErr) {
			if !errors.IsErrorCode(promptErr, errors.ErrTerminalRead) {
				t.Error("Middle error should have ErrTerminalRead code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(sessionErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}

package prompt

import (
	"strconv"
	"strings"

	"github.com/parley-go/parley/pkg/widget"
)

// TextConfig configures a Text, TextInt or TextFloat prompt.
type TextConfig struct {
	// Message is the question shown in the frame header.
	Message string
	// Placeholder is ghost text shown while the buffer is empty. It is
	// never part of the returned value.
	Placeholder string
	// Initial pre-fills the buffer with an editable value.
	Initial string
	// Validate rejects a candidate with a non-nil error; the error text
	// renders inline and the buffer stays editable. nil accepts all.
	Validate func(string) error
}

// Text runs a single-line text prompt and returns the submitted string.
func Text(s *Session, cfg TextConfig) (string, error) {
	w := widget.NewText(widget.TextConfig{
		Message:     cfg.Message,
		Placeholder: cfg.Placeholder,
		Initial:     cfg.Initial,
		Validate:    cfg.Validate,
	})
	if err := run(s, w, nil); err != nil {
		return "", err
	}
	return w.Value(), nil
}

// TextInt runs a text prompt whose value must parse as an integer. The
// Validate hook still sees the raw string first; the parse step runs
// after it accepts, and a parse failure rejects the submit inline like
// any other validation error.
func TextInt(s *Session, cfg TextConfig) (int, error) {
	w := widget.NewText(widget.TextConfig{
		Message:     cfg.Message,
		Placeholder: cfg.Placeholder,
		Initial:     cfg.Initial,
		Validate:    cfg.Validate,
	})

	var value int
	parse := func() {
		v, err := strconv.Atoi(strings.TrimSpace(w.Value()))
		if err != nil {
			w.Reject(err)
			return
		}
		value = v
	}

	if err := run(s, w, parse); err != nil {
		return 0, err
	}
	return value, nil
}

// TextFloat is TextInt for floating-point values.
func TextFloat(s *Session, cfg TextConfig) (float64, error) {
	w := widget.NewText(widget.TextConfig{
		Message:     cfg.Message,
		Placeholder: cfg.Placeholder,
		Initial:     cfg.Initial,
		Validate:    cfg.Validate,
	})

	var value float64
	parse := func() {
		v, err := strconv.ParseFloat(strings.TrimSpace(w.Value()), 64)
		if err != nil {
			w.Reject(err)
			return
		}
		value = v
	}

	if err := run(s, w, parse); err != nil {
		return 0, err
	}
	return value, nil
}

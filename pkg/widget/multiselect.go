package widget

import (
	"strings"

	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/logging"
	"github.com/parley-go/parley/pkg/theme"
)

// MultiSelectConfig configures a multi-select widget.
type MultiSelectConfig[T any] struct {
	// Message is the prompt question.
	Message string
	// Options are the selectable entries, rendered in order.
	Options []Option[T]
	// InitialIndexes pre-checks options by index; out-of-range entries
	// are ignored.
	InitialIndexes []int
	// Validate runs on the chosen values at each submit attempt; nil
	// accepts everything, including the empty set.
	Validate func([]T) error
}

// MultiSelect is the multi-select state machine. Navigation matches
// Select; Space toggles membership of the focused option.
type MultiSelect[T any] struct {
	cfg      MultiSelectConfig[T]
	cursor   int
	selected []bool
	state    State
	err      string
}

// NewMultiSelect returns a multi-select in its editing state.
func NewMultiSelect[T any](cfg MultiSelectConfig[T]) *MultiSelect[T] {
	m := &MultiSelect[T]{
		cfg:      cfg,
		selected: make([]bool, len(cfg.Options)),
	}
	for _, i := range cfg.InitialIndexes {
		if i >= 0 && i < len(m.selected) {
			m.selected[i] = true
		}
	}
	return m
}

// Apply advances the machine by one key event.
func (m *MultiSelect[T]) Apply(ev key.Event) {
	if Done(m.state) {
		return
	}
	m.err = ""

	n := len(m.cfg.Options)
	switch {
	case isCancelKey(ev):
		m.state = StateCancelled
	case ev.Kind == key.Enter:
		m.submit()
	case ev.Kind == key.Up && n > 0:
		m.cursor = (m.cursor - 1 + n) % n
	case ev.Kind == key.Down && n > 0:
		m.cursor = (m.cursor + 1) % n
	case ev.Kind == key.Rune && ev.Rune == ' ' && n > 0:
		m.selected[m.cursor] = !m.selected[m.cursor]
	}
}

func (m *MultiSelect[T]) submit() {
	m.state = StateSubmitting
	if m.cfg.Validate != nil {
		if err := m.cfg.Validate(m.Values()); err != nil {
			m.err = err.Error()
			m.state = StateEditing
			logger := logging.GetLogger("widget")
			logger.Debug().
				Str("code", string(errors.ErrValidationRejected)).
				Str("widget", "multiselect").
				Msg("Submit rejected")
			return
		}
	}
	m.state = StateSubmitted
}

// State returns the lifecycle phase.
func (m *MultiSelect[T]) State() State { return m.state }

// Error returns the inline rejection message, empty when none.
func (m *MultiSelect[T]) Error() string { return m.err }

// Values returns the checked options' values in list order.
func (m *MultiSelect[T]) Values() []T {
	values := make([]T, 0, len(m.cfg.Options))
	for i, opt := range m.cfg.Options {
		if m.selected[i] {
			values = append(values, opt.Value)
		}
	}
	return values
}

// Frame renders the prompt frame. While editing every option renders on
// its own row; submitted and cancelled frames collapse the checked
// labels onto one row.
func (m *MultiSelect[T]) Frame(th *theme.Theme, width int) []string {
	st := themeState(m.state, m.err)

	lines := []string{th.FormatHeader(st, m.cfg.Message)}

	if st == theme.StateActive || st == theme.StateError {
		for i, opt := range m.cfg.Options {
			item := th.CheckboxItem(st, m.selected[i], i == m.cursor, opt.Label, opt.Hint)
			lines = append(lines, th.FormatLine(st, item))
		}
		return append(lines, th.FormatFooter(st, m.err))
	}

	var kept []string
	for i, opt := range m.cfg.Options {
		if item := th.CheckboxItem(st, m.selected[i], false, opt.Label, ""); item != "" {
			kept = append(kept, item)
		}
	}
	lines = append(lines, th.FormatLine(st, strings.Join(kept, ", ")))
	return append(lines, th.FormatFooter(st, ""))
}

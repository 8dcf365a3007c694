// Package widget implements the prompt state machines. Each widget is a
// closed state machine advanced by decoded key events; rendering a state
// into frame rows is a pure function of the widget, the theme and the
// terminal width. Widgets never perform I/O.
package widget

import (
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/theme"
)

// State is the lifecycle phase of a widget.
type State int

const (
	// StateEditing accepts input. A non-empty inline error means the
	// last submit attempt was rejected.
	StateEditing State = iota
	// StateSubmitting is the transient phase while a submit attempt is
	// validated.
	StateSubmitting
	// StateSubmitted holds an accepted value. Terminal.
	StateSubmitted
	// StateCancelled was abandoned by the user. Terminal.
	StateCancelled
)

// Widget is the contract the session loop drives: feed events, render
// frames, stop when the state turns terminal.
type Widget interface {
	Apply(ev key.Event)
	Frame(th *theme.Theme, width int) []string
	State() State
}

var (
	_ Widget = (*Text)(nil)
	_ Widget = (*Confirm)(nil)
	_ Widget = (*Select[string])(nil)
	_ Widget = (*MultiSelect[string])(nil)
	_ Widget = (*Password)(nil)
	_ Widget = (*Spinner)(nil)
	_ Widget = (*Progress)(nil)
)

// Done reports whether a state is terminal.
func Done(s State) bool {
	return s == StateSubmitted || s == StateCancelled
}

// themeState maps a widget phase and inline error to the rendering state.
func themeState(s State, errMsg string) theme.State {
	switch {
	case s == StateCancelled:
		return theme.StateCancel
	case s == StateSubmitted:
		return theme.StateSubmit
	case errMsg != "":
		return theme.StateError
	default:
		return theme.StateActive
	}
}

// isCancelKey reports whether the event aborts the prompt.
func isCancelKey(ev key.Event) bool {
	return ev.Kind == key.CtrlC || ev.Kind == key.Escape
}

// styledInput renders buffer content for the given state, overlaying the
// block cursor while editing.
func styledInput(th *theme.Theme, st theme.State, runes []rune, cursor int) string {
	base := th.InputStyle(st)
	if st == theme.StateSubmit || st == theme.StateCancel {
		return base.Render(string(runes))
	}

	left, cell, right := splitAtCursor(runes, cursor)
	return th.StyledCursor(base, left, cell, right)
}

// placeholderInput renders ghost text with the cursor parked on its first
// cell.
func placeholderInput(th *theme.Theme, st theme.State, placeholder string) string {
	base := th.PlaceholderStyle(st)
	ph := []rune(placeholder)
	if len(ph) == 0 {
		return th.StyledCursor(base, "", "", "")
	}
	return th.StyledCursor(base, "", string(ph[0]), string(ph[1:]))
}

func splitAtCursor(runes []rune, cursor int) (left, cell, right string) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	left = string(runes[:cursor])
	if cursor < len(runes) {
		cell = string(runes[cursor])
		right = string(runes[cursor+1:])
	}
	return left, cell, right
}

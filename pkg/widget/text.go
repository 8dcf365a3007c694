package widget

import (
	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/logging"
	"github.com/parley-go/parley/pkg/theme"
)

// TextConfig configures a text input widget.
type TextConfig struct {
	// Message is the prompt question.
	Message string
	// Placeholder is ghost text shown while the buffer is empty. It is
	// never part of the value.
	Placeholder string
	// Initial pre-fills the editable buffer.
	Initial string
	// Validate runs on each submit attempt; nil accepts everything.
	Validate func(string) error
}

// Text is the single-line text input state machine.
type Text struct {
	cfg   TextConfig
	buf   lineBuffer
	state State
	err   string
}

// NewText returns a text input in its editing state.
func NewText(cfg TextConfig) *Text {
	t := &Text{cfg: cfg}
	t.buf.set(cfg.Initial)
	return t
}

// Apply advances the machine by one key event. Events after a terminal
// state are ignored.
func (t *Text) Apply(ev key.Event) {
	if Done(t.state) {
		return
	}
	t.err = ""

	switch {
	case isCancelKey(ev):
		t.state = StateCancelled
	case ev.Kind == key.Enter:
		t.submit()
	default:
		t.buf.apply(ev)
	}
}

func (t *Text) submit() {
	t.state = StateSubmitting
	if t.cfg.Validate != nil {
		if err := t.cfg.Validate(t.Value()); err != nil {
			t.Reject(err)
			return
		}
	}
	t.state = StateSubmitted
}

// Reject records a rejected submit attempt, such as a failed validation
// or a failed parse of a typed value, and returns the widget to editing
// with the buffer untouched.
func (t *Text) Reject(err error) {
	t.err = err.Error()
	t.state = StateEditing
	logger := logging.GetLogger("widget")
	logger.Debug().
		Str("code", string(errors.ErrValidationRejected)).
		Str("widget", "text").
		Msg("Submit rejected")
}

// State returns the lifecycle phase.
func (t *Text) State() State { return t.state }

// Error returns the inline rejection message, empty when none.
func (t *Text) Error() string { return t.err }

// Value returns the current buffer content.
func (t *Text) Value() string { return t.buf.String() }

// Frame renders the prompt frame: header, input line, footer.
func (t *Text) Frame(th *theme.Theme, width int) []string {
	st := themeState(t.state, t.err)

	var input string
	if len(t.buf.runes) == 0 && t.cfg.Placeholder != "" &&
		(st == theme.StateActive || st == theme.StateError) {
		input = placeholderInput(th, st, t.cfg.Placeholder)
	} else {
		input = styledInput(th, st, t.buf.runes, t.buf.cursor)
	}

	return []string{
		th.FormatHeader(st, t.cfg.Message),
		th.FormatLine(st, input),
		th.FormatFooter(st, t.err),
	}
}

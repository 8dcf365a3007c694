package widget

import (
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/theme"
)

// Option is one selectable entry. Label is what renders; Value is what
// the prompt returns. An empty Label renders the value's place blank, so
// callers normally set both.
type Option[T any] struct {
	Value T
	Label string
	Hint  string
}

// SelectConfig configures a single-select widget.
type SelectConfig[T any] struct {
	// Message is the prompt question.
	Message string
	// Options are the selectable entries, rendered in order.
	Options []Option[T]
	// InitialIndex focuses an option at start; out-of-range values
	// focus the first option.
	InitialIndex int
}

// Select is the single-select state machine. Up/Down wrap around both
// ends of the option list.
type Select[T any] struct {
	cfg    SelectConfig[T]
	cursor int
	state  State
}

// NewSelect returns a single-select in its editing state.
func NewSelect[T any](cfg SelectConfig[T]) *Select[T] {
	s := &Select[T]{cfg: cfg}
	if cfg.InitialIndex > 0 && cfg.InitialIndex < len(cfg.Options) {
		s.cursor = cfg.InitialIndex
	}
	return s
}

// Apply advances the machine by one key event.
func (s *Select[T]) Apply(ev key.Event) {
	if Done(s.state) {
		return
	}

	n := len(s.cfg.Options)
	switch {
	case isCancelKey(ev):
		s.state = StateCancelled
	case ev.Kind == key.Enter:
		if n > 0 {
			s.state = StateSubmitted
		}
	case ev.Kind == key.Up && n > 0:
		s.cursor = (s.cursor - 1 + n) % n
	case ev.Kind == key.Down && n > 0:
		s.cursor = (s.cursor + 1) % n
	}
}

// State returns the lifecycle phase.
func (s *Select[T]) State() State { return s.state }

// Index returns the focused option index.
func (s *Select[T]) Index() int { return s.cursor }

// Value returns the focused option's value.
func (s *Select[T]) Value() T {
	var zero T
	if len(s.cfg.Options) == 0 {
		return zero
	}
	return s.cfg.Options[s.cursor].Value
}

// Frame renders the prompt frame. While editing every option renders on
// its own row; submitted and cancelled frames keep only the chosen one.
func (s *Select[T]) Frame(th *theme.Theme, width int) []string {
	st := themeState(s.state, "")

	lines := []string{th.FormatHeader(st, s.cfg.Message)}
	for i, opt := range s.cfg.Options {
		item := th.RadioItem(st, i == s.cursor, opt.Label, opt.Hint)
		if item == "" {
			continue
		}
		lines = append(lines, th.FormatLine(st, item))
	}
	return append(lines, th.FormatFooter(st, ""))
}

package widget

import (
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/theme"
)

// Spinner is the indeterminate activity indicator. It has no key
// transitions; the owning session advances the animation on a ticker
// while a task runs, then stops it with the outcome.
type Spinner struct {
	message string
	tick    int
	state   State
	failed  bool
	final   string
}

// NewSpinner returns a running spinner showing message.
func NewSpinner(message string) *Spinner {
	return &Spinner{message: message}
}

// Apply ignores every key; cancellation of a running task is the
// session's job.
func (s *Spinner) Apply(ev key.Event) {}

// State returns the lifecycle phase.
func (s *Spinner) State() State { return s.state }

// Tick advances the animation by one frame.
func (s *Spinner) Tick() {
	s.tick++
}

// SetMessage swaps the running message without restarting the animation.
func (s *Spinner) SetMessage(message string) {
	s.message = message
}

// Stop ends the spinner successfully. An empty message keeps the running
// one.
func (s *Spinner) Stop(message string) {
	s.end(StateSubmitted, false, message)
}

// Fail ends the spinner with the failure glyph.
func (s *Spinner) Fail(message string) {
	s.end(StateSubmitted, true, message)
}

// Cancel ends the spinner with the cancel glyph.
func (s *Spinner) Cancel(message string) {
	s.end(StateCancelled, false, message)
}

func (s *Spinner) end(state State, failed bool, message string) {
	if Done(s.state) {
		return
	}
	if message == "" {
		message = s.message
	}
	s.state = state
	s.failed = failed
	s.final = message
}

// Frame renders one animation row while running, or the outcome row plus
// a connecting bar once stopped.
func (s *Spinner) Frame(th *theme.Theme, width int) []string {
	if s.state == StateEditing {
		frames := th.SpinnerFrames()
		var glyph string
		if len(frames) > 0 {
			glyph = frames[s.tick%len(frames)]
		}
		return []string{th.Style(theme.RoleSpinner).Render(glyph) + "  " + s.message}
	}

	st := theme.StateSubmit
	switch {
	case s.state == StateCancelled:
		st = theme.StateCancel
	case s.failed:
		st = theme.StateError
	}
	return []string{
		th.FormatHeader(st, s.final),
		th.FormatLine(theme.StateSubmit, ""),
	}
}

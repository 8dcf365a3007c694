package prompt

import (
	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/widget"
)

// run drives one widget to a terminal state: render, wait for a key,
// apply, repeat. accept runs after the widget accepts a submit and may
// push it back to editing (typed prompts reject unparseable input
// there); nil skips the step.
//
// A submitted widget resolves to nil and its last frame is committed to
// scrollback. A cancelled widget trips the session token and resolves
// to a CANCELLED error.
func run(s *Session, w widget.Widget, accept func()) error {
	if err := s.guard(); err != nil {
		return err
	}

	if err := s.render(w); err != nil {
		return err
	}

	for {
		ev, err := s.nextKey()
		switch {
		case err == nil:
			w.Apply(ev)
		case errors.IsCancelled(err):
			// The session token tripped while waiting; cancel the
			// widget so the frame shows the abandoned state.
			w.Apply(key.Event{Kind: key.CtrlC})
		default:
			return err
		}

		if w.State() == widget.StateSubmitted && accept != nil {
			accept()
		}

		if err := s.render(w); err != nil {
			return err
		}

		switch w.State() {
		case widget.StateSubmitted:
			return s.settle()
		case widget.StateCancelled:
			if err := s.settle(); err != nil {
				return err
			}
			s.trip()
			s.log.Debug().Msg("Prompt cancelled")
			return errors.New(errors.ErrCancelled, "prompt cancelled")
		}
	}
}

package widget

import (
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/theme"
)

// ConfirmConfig configures a yes/no confirmation widget.
type ConfirmConfig struct {
	// Message is the prompt question.
	Message string
	// Initial sets the focused answer; the default focuses No.
	Initial bool
}

// Confirm is the yes/no confirmation state machine.
type Confirm struct {
	cfg   ConfirmConfig
	yes   bool
	state State
}

// NewConfirm returns a confirmation in its editing state.
func NewConfirm(cfg ConfirmConfig) *Confirm {
	return &Confirm{cfg: cfg, yes: cfg.Initial}
}

// Apply advances the machine by one key event. Arrow keys and Tab toggle
// the focus; y and n submit their answer immediately.
func (c *Confirm) Apply(ev key.Event) {
	if Done(c.state) {
		return
	}

	switch {
	case isCancelKey(ev):
		c.state = StateCancelled
	case ev.Kind == key.Enter:
		c.state = StateSubmitted
	case ev.Kind == key.Left || ev.Kind == key.Right || ev.Kind == key.Tab:
		c.yes = !c.yes
	case ev.Kind == key.Rune && (ev.Rune == 'y' || ev.Rune == 'Y'):
		c.yes = true
		c.state = StateSubmitted
	case ev.Kind == key.Rune && (ev.Rune == 'n' || ev.Rune == 'N'):
		c.yes = false
		c.state = StateSubmitted
	}
}

// State returns the lifecycle phase.
func (c *Confirm) State() State { return c.state }

// Value returns the focused answer.
func (c *Confirm) Value() bool { return c.yes }

// Frame renders the prompt frame with the yes/no line.
func (c *Confirm) Frame(th *theme.Theme, width int) []string {
	st := themeState(c.state, "")

	return []string{
		th.FormatHeader(st, c.cfg.Message),
		th.FormatConfirm(st, c.yes),
		th.FormatFooter(st, ""),
	}
}

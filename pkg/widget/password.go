package widget

import (
	"strings"

	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/theme"
)

// PasswordConfig configures a masked text input widget.
type PasswordConfig struct {
	// Message is the prompt question.
	Message string
	// Mask replaces every entered rune on screen; zero uses the theme's
	// mask symbol.
	Mask rune
	// Validate runs on the real value at each submit attempt.
	Validate func(string) error
}

// Password wraps the text machine with masked rendering. The real value
// never reaches a frame in any state.
type Password struct {
	text Text
	mask rune
}

// NewPassword returns a password input in its editing state.
func NewPassword(cfg PasswordConfig) *Password {
	return &Password{
		text: Text{cfg: TextConfig{
			Message:  cfg.Message,
			Validate: cfg.Validate,
		}},
		mask: cfg.Mask,
	}
}

// Apply advances the machine by one key event.
func (p *Password) Apply(ev key.Event) {
	p.text.Apply(ev)
}

// State returns the lifecycle phase.
func (p *Password) State() State { return p.text.State() }

// Error returns the inline rejection message, empty when none.
func (p *Password) Error() string { return p.text.Error() }

// Value returns the real entered value.
func (p *Password) Value() string { return p.text.Value() }

// Frame renders the prompt frame with every buffer rune masked.
func (p *Password) Frame(th *theme.Theme, width int) []string {
	st := themeState(p.text.state, p.text.err)

	mask := p.mask
	if mask == 0 {
		mask = th.PasswordMask()
	}
	masked := []rune(strings.Repeat(string(mask), len(p.text.buf.runes)))

	return []string{
		th.FormatHeader(st, p.text.cfg.Message),
		th.FormatLine(st, styledInput(th, st, masked, p.text.buf.cursor)),
		th.FormatFooter(st, p.text.err),
	}
}

package widget

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/theme"
)

// Progress is the determinate counterpart of Spinner: same chassis, but
// the caller advances a current/total bar instead of a ticker.
type Progress struct {
	message string
	total   int
	current int
	state   State
	failed  bool
	final   string
}

// NewProgress returns a running progress bar over total units.
func NewProgress(message string, total int) *Progress {
	if total < 1 {
		total = 1
	}
	return &Progress{message: message, total: total}
}

// Apply ignores every key.
func (p *Progress) Apply(ev key.Event) {}

// State returns the lifecycle phase.
func (p *Progress) State() State { return p.state }

// Advance moves the bar forward by n units, clamped to the total.
func (p *Progress) Advance(n int) {
	if Done(p.state) {
		return
	}
	p.current += n
	if p.current > p.total {
		p.current = p.total
	}
	if p.current < 0 {
		p.current = 0
	}
}

// Current returns the units completed so far.
func (p *Progress) Current() int { return p.current }

// SetMessage relabels the bar without resetting it.
func (p *Progress) SetMessage(message string) {
	if Done(p.state) {
		return
	}
	p.message = message
}

// Stop ends the bar successfully. An empty message keeps the running one.
func (p *Progress) Stop(message string) {
	p.end(StateSubmitted, false, message)
}

// Fail ends the bar with the failure glyph.
func (p *Progress) Fail(message string) {
	p.end(StateSubmitted, true, message)
}

// Cancel ends the bar with the cancel glyph.
func (p *Progress) Cancel(message string) {
	p.end(StateCancelled, false, message)
}

func (p *Progress) end(state State, failed bool, message string) {
	if Done(p.state) {
		return
	}
	if message == "" {
		message = p.message
	}
	p.state = state
	p.failed = failed
	p.final = message
}

// Frame renders the bar row while running, or the outcome row plus a
// connecting bar once stopped.
func (p *Progress) Frame(th *theme.Theme, width int) []string {
	if p.state == StateEditing {
		counter := fmt.Sprintf("%d/%d", p.current, p.total)
		cells := barCells(width, runewidth.StringWidth(p.message)+len(counter))
		filled := p.current * cells / p.total

		bar := th.Style(theme.RoleSpinner).Render(strings.Repeat(th.Symbols.ProgressFilled, filled)) +
			strings.Repeat(th.Symbols.ProgressEmpty, cells-filled)
		line := th.StateSymbol(theme.StateActive) + "  " + p.message + " " + bar + " " + counter
		return []string{line}
	}

	st := theme.StateSubmit
	switch {
	case p.state == StateCancelled:
		st = theme.StateCancel
	case p.failed:
		st = theme.StateError
	}
	return []string{
		th.FormatHeader(st, p.final),
		th.FormatLine(theme.StateSubmit, ""),
	}
}

// barCells fits the bar between the message and the counter, clamped so
// narrow terminals still show movement.
func barCells(width, used int) int {
	cells := width - used - 6
	if cells > 30 {
		return 30
	}
	if cells < 10 {
		return 10
	}
	return cells
}

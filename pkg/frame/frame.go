// Package frame paints prompt frames in place. A frame is a slice of
// fully styled rows; re-rendering rewrites only the rows that changed
// since the previous paint, so live widgets update without flicker.
package frame

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Output is the terminal sink a renderer paints to.
type Output interface {
	Write(s string) error
	Width() int
}

// Renderer paints frames over each other. It is not safe for concurrent
// use; the owning session serializes access.
type Renderer struct {
	out  Output
	prev []string
}

// NewRenderer returns a renderer painting to out.
func NewRenderer(out Output) *Renderer {
	return &Renderer{out: out}
}

// Render paints the frame, truncating rows to the terminal width.
// Unchanged leading rows are left alone; everything from the first
// changed row down is repainted. Rendering an identical frame writes
// nothing.
func (r *Renderer) Render(lines []string) error {
	width := r.out.Width()
	next := make([]string, len(lines))
	for i, line := range lines {
		next[i] = ansi.Truncate(line, width, "")
	}

	patches := Diff(r.prev, next)
	if len(patches) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("\r")
	for _, p := range patches {
		switch p.Op {
		case OpMoveUp:
			fmt.Fprintf(&b, termenv.CSI+termenv.CursorUpSeq, p.Rows)
		case OpEraseBelow:
			fmt.Fprintf(&b, termenv.CSI+termenv.EraseDisplaySeq, 0)
		case OpPaint:
			b.WriteString(p.Line)
		case OpAppend:
			b.WriteString("\r\n")
			b.WriteString(p.Line)
		}
	}

	if err := r.out.Write(b.String()); err != nil {
		return err
	}
	r.prev = next
	return nil
}

// Commit seals the painted frame into scrollback. The next frame paints
// on a fresh row below it.
func (r *Renderer) Commit() error {
	if len(r.prev) == 0 {
		return nil
	}
	if err := r.out.Write("\r\n"); err != nil {
		return err
	}
	r.prev = nil
	return nil
}

// Clear wipes the painted frame and rewinds the cursor to its first row.
func (r *Renderer) Clear() error {
	if len(r.prev) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("\r")
	if up := len(r.prev) - 1; up > 0 {
		fmt.Fprintf(&b, termenv.CSI+termenv.CursorUpSeq, up)
	}
	fmt.Fprintf(&b, termenv.CSI+termenv.EraseDisplaySeq, 0)

	if err := r.out.Write(b.String()); err != nil {
		return err
	}
	r.prev = nil
	return nil
}

// Lines returns the row count of the frame currently on screen.
func (r *Renderer) Lines() int {
	return len(r.prev)
}

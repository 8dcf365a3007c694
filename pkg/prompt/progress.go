package prompt

import (
	"sync"

	"github.com/parley-go/parley/pkg/widget"
)

// ProgressConfig configures a determinate progress bar.
type ProgressConfig struct {
	// Message labels the bar.
	Message string
	// Total is the amount of work the bar represents. Values below one
	// count as one.
	Total int
}

// Progress is a caller-advanced progress bar. It draws its first frame
// immediately; Advance repaints, Stop, Fail or Cancel freeze the
// outcome row. Like Spinner, a handle is one-shot.
type Progress struct {
	s *Session

	mu sync.Mutex
	w  *widget.Progress
}

// NewProgress renders a progress bar at zero and returns its handle. On
// a cancelled session the handle is inert.
func NewProgress(s *Session, cfg ProgressConfig) *Progress {
	pb := &Progress{s: s, w: widget.NewProgress(cfg.Message, cfg.Total)}
	if s.ctx.Err() == nil {
		_ = pb.s.paint(pb.w.Frame(pb.s.theme, pb.s.term.Width()))
	}
	return pb
}

// Advance moves the bar forward by n units, clamped to the total.
func (pb *Progress) Advance(n int) error {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if widget.Done(pb.w.State()) || pb.s.ctx.Err() != nil {
		return nil
	}
	pb.w.Advance(n)
	return pb.paintLocked()
}

// SetMessage relabels the bar.
func (pb *Progress) SetMessage(message string) error {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if widget.Done(pb.w.State()) || pb.s.ctx.Err() != nil {
		return nil
	}
	pb.w.SetMessage(message)
	return pb.paintLocked()
}

// Stop freezes the success row. An empty message keeps the label.
func (pb *Progress) Stop(message string) error {
	return pb.end(func() { pb.w.Stop(message) })
}

// Fail freezes the failure row.
func (pb *Progress) Fail(message string) error {
	return pb.end(func() { pb.w.Fail(message) })
}

// Cancel freezes the cancelled row.
func (pb *Progress) Cancel(message string) error {
	return pb.end(func() { pb.w.Cancel(message) })
}

func (pb *Progress) end(apply func()) error {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if widget.Done(pb.w.State()) {
		return nil
	}
	apply()
	if err := pb.paintLocked(); err != nil {
		return err
	}
	return pb.s.settle()
}

func (pb *Progress) paintLocked() error {
	return pb.s.paint(pb.w.Frame(pb.s.theme, pb.s.term.Width()))
}

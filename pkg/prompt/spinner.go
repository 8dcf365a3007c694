package prompt

import (
	"context"
	"sync"
	"time"

	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/widget"
)

// cancelJoinTimeout bounds how long a cancelled task may delay the
// cancel frame.
const cancelJoinTimeout = 2 * time.Second

// SpinnerConfig configures a spinner, for Spin or a manual handle.
type SpinnerConfig struct {
	// Message shows next to the animation.
	Message string
	// StopMessage replaces Message on success; empty keeps it.
	StopMessage string
	// FailMessage replaces Message on failure; empty uses the task
	// error's text.
	FailMessage string
	// Interval is the animation tick period. Zero uses the session
	// settings value.
	Interval time.Duration
}

// Spin animates a spinner while task runs and returns the task's
// result. The task receives a context that ends when the user presses
// CtrlC or the session is cancelled; it should return promptly once the
// context is done. Keys typed while spinning are discarded.
func Spin[T any](s *Session, cfg SpinnerConfig, task func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if err := s.guard(); err != nil {
		return zero, err
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = s.settings.Spinner.Interval
	}

	type result struct {
		value T
		err   error
	}
	results := make(chan result, 1)
	go func() {
		v, err := task(s.ctx)
		results <- result{value: v, err: err}
	}()

	w := widget.NewSpinner(cfg.Message)
	if err := s.render(w); err != nil {
		return zero, err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	finish := func() error {
		if err := s.render(w); err != nil {
			return err
		}
		return s.settle()
	}

	cancelled := func() (T, error) {
		s.trip()
		select {
		case <-results:
		case <-time.After(cancelJoinTimeout):
			s.log.Warn().Msg("Task still running after cancellation")
		}
		w.Cancel("")
		if err := finish(); err != nil {
			return zero, err
		}
		return zero, errors.New(errors.ErrCancelled, "spinner cancelled")
	}

	for {
		select {
		case r := <-results:
			if r.err != nil {
				message := cfg.FailMessage
				if message == "" {
					message = r.err.Error()
				}
				w.Fail(message)
				if err := finish(); err != nil {
					return zero, err
				}
				return zero, r.err
			}
			w.Stop(cfg.StopMessage)
			if err := finish(); err != nil {
				return zero, err
			}
			return r.value, nil

		case <-ticker.C:
			w.Tick()
			if err := s.render(w); err != nil {
				return zero, err
			}

		case kr := <-s.keys:
			if kr.err != nil {
				return zero, kr.err
			}
			if kr.ev.Kind == key.CtrlC {
				return cancelled()
			}

		case <-s.readDone:
			return zero, s.readErr

		case <-s.ctx.Done():
			return cancelled()
		}
	}
}

// Spinner is a manually driven spinner for work the caller runs itself.
// Start launches the animation, Stop, Fail or Cancel freeze the outcome
// row. A handle is one-shot; after an outcome every call is a no-op.
type Spinner struct {
	s        *Session
	interval time.Duration

	mu      sync.Mutex
	w       *widget.Spinner
	running bool
	done    chan struct{}
}

// NewSpinner returns an idle spinner handle bound to the session.
func NewSpinner(s *Session, cfg SpinnerConfig) *Spinner {
	interval := cfg.Interval
	if interval <= 0 {
		interval = s.settings.Spinner.Interval
	}
	return &Spinner{
		s:        s,
		interval: interval,
		w:        widget.NewSpinner(cfg.Message),
	}
}

// Start begins the animation. A non-empty message replaces the
// configured one. Starting a running, finished or cancelled-session
// spinner does nothing.
func (sp *Spinner) Start(message string) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.running || widget.Done(sp.w.State()) || sp.s.ctx.Err() != nil {
		return
	}
	if message != "" {
		sp.w.SetMessage(message)
	}
	sp.running = true
	sp.done = make(chan struct{})
	_ = sp.paintLocked()
	go sp.loop(sp.done)
}

// SetMessage swaps the running message without restarting the
// animation.
func (sp *Spinner) SetMessage(message string) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if widget.Done(sp.w.State()) {
		return
	}
	sp.w.SetMessage(message)
	if sp.running {
		_ = sp.paintLocked()
	}
}

// Stop freezes the success row. An empty message keeps the running one.
func (sp *Spinner) Stop(message string) error {
	return sp.end(func() { sp.w.Stop(message) })
}

// Fail freezes the failure row.
func (sp *Spinner) Fail(message string) error {
	return sp.end(func() { sp.w.Fail(message) })
}

// Cancel freezes the cancelled row.
func (sp *Spinner) Cancel(message string) error {
	return sp.end(func() { sp.w.Cancel(message) })
}

func (sp *Spinner) end(apply func()) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if widget.Done(sp.w.State()) {
		return nil
	}
	if sp.running {
		close(sp.done)
		sp.running = false
	}
	apply()
	if err := sp.paintLocked(); err != nil {
		return err
	}
	return sp.s.settle()
}

// loop animates until the handle ends or the session is cancelled. It
// watches the key stream so CtrlC during manual work still trips the
// session token; everything else typed is discarded.
func (sp *Spinner) loop(done chan struct{}) {
	ticker := time.NewTicker(sp.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			sp.mu.Lock()
			if sp.running {
				sp.w.Tick()
				_ = sp.paintLocked()
			}
			sp.mu.Unlock()
		case kr := <-sp.s.keys:
			if kr.err == nil && kr.ev.Kind == key.CtrlC {
				sp.s.trip()
			}
		case <-sp.s.readDone:
			return
		case <-sp.s.ctx.Done():
			return
		}
	}
}

// paintLocked renders the current frame. Callers hold sp.mu.
func (sp *Spinner) paintLocked() error {
	return sp.s.paint(sp.w.Frame(sp.s.theme, sp.s.term.Width()))
}

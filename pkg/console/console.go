// Package console owns the terminal: raw mode, decoded key input, writes
// and size queries. Exactly one driver should be open per terminal.
package console

import (
	stderrors "errors"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/logging"
)

const (
	showCursorSeq = termenv.CSI + termenv.ShowCursorSeq
	hideCursorSeq = termenv.CSI + termenv.HideCursorSeq
)

// defaultWidth is used when the size query fails mid-session.
const defaultWidth = 80

// Driver is an exclusive handle on a terminal. Open validates the
// terminal, MakeRaw and Restore toggle input modes, and ReadKey yields
// decoded key events one at a time.
type Driver struct {
	in  *os.File
	out *os.File

	reader  cancelreader.CancelReader
	decoder *key.Decoder
	queued  []key.Event
	buf     []byte

	mu       sync.Mutex
	rawState *term.State
}

// Open validates that in is a terminal whose size can be queried and
// prepares a driver on it. Passing nil files selects stdin and stdout.
// The driver starts in cooked mode.
func Open(in, out *os.File) (*Driver, error) {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return nil, errors.New(errors.ErrTerminalUnavailable, "input is not a terminal")
	}
	if _, _, err := term.GetSize(int(out.Fd())); err != nil {
		return nil, errors.Wrap(err, errors.ErrTerminalUnavailable, "cannot query terminal size")
	}

	reader, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTerminalUnavailable, "cannot prepare input reader")
	}

	logger := logging.GetLogger("console")
	logger.Debug().
		Int("fd", int(in.Fd())).
		Msg("Terminal driver opened")

	return &Driver{
		in:      in,
		out:     out,
		reader:  reader,
		decoder: key.NewDecoder(),
		buf:     make([]byte, 256),
	}, nil
}

// MakeRaw switches the input to raw mode. Calling it while already raw is
// a no-op.
func (d *Driver) MakeRaw() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.rawState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(d.in.Fd()))
	if err != nil {
		return errors.Wrap(err, errors.ErrTerminalUnavailable, "cannot enter raw mode")
	}
	d.rawState = state
	return nil
}

// Restore returns the terminal to cooked mode and shows the cursor. It is
// idempotent and safe on every exit path.
func (d *Driver) Restore() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.rawState == nil {
		return nil
	}
	state := d.rawState
	d.rawState = nil

	_, _ = d.out.WriteString(showCursorSeq)
	if err := term.Restore(int(d.in.Fd()), state); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot restore terminal mode")
	}
	return nil
}

// ReadKey blocks until one key event is available, buffering partial
// escape sequences across reads. It returns a SESSION_CLOSED error once
// Close cancels the reader.
func (d *Driver) ReadKey() (key.Event, error) {
	for {
		if len(d.queued) > 0 {
			ev := d.queued[0]
			d.queued = d.queued[1:]
			return ev, nil
		}

		n, err := d.reader.Read(d.buf)
		if err != nil {
			if stderrors.Is(err, cancelreader.ErrCanceled) {
				return key.Event{}, errors.New(errors.ErrSessionClosed, "input reader closed")
			}
			return key.Event{}, errors.Wrap(err, errors.ErrTerminalRead, "cannot read input")
		}
		d.queued = append(d.queued, d.decoder.Feed(d.buf[:n])...)
	}
}

// Write sends s to the terminal unbuffered.
func (d *Driver) Write(s string) error {
	if _, err := d.out.WriteString(s); err != nil {
		return errors.Wrap(err, errors.ErrTerminalWrite, "cannot write to terminal")
	}
	return nil
}

// Width returns the current terminal width, re-queried on every call.
func (d *Driver) Width() int {
	w, _, err := term.GetSize(int(d.out.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// HideCursor hides the terminal cursor until ShowCursor or Restore.
func (d *Driver) HideCursor() error {
	return d.Write(hideCursorSeq)
}

// ShowCursor makes the terminal cursor visible again.
func (d *Driver) ShowCursor() error {
	return d.Write(showCursorSeq)
}

// Close releases any blocked ReadKey and restores the terminal.
func (d *Driver) Close() error {
	d.reader.Cancel()
	err := d.Restore()
	logger := logging.GetLogger("console")
	logger.Debug().Msg("Terminal driver closed")
	return err
}

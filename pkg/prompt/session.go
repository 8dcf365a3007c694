// Package prompt is the public face of the engine. A Session owns the
// terminal for a sequence of prompts; free functions like Text and
// Select run one widget each against it and return the validated value
// or a CANCELLED error. All rendering goes through the session's frame
// renderer under a single lock, and the terminal is restored exactly
// once no matter how the session ends.
package prompt

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/parley-go/parley/pkg/config"
	"github.com/parley-go/parley/pkg/console"
	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/frame"
	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/logging"
	"github.com/parley-go/parley/pkg/theme"
	"github.com/parley-go/parley/pkg/widget"
)

// Terminal is the device a session drives. *console.Driver implements
// it; tests substitute an in-memory script.
type Terminal interface {
	MakeRaw() error
	Restore() error
	ReadKey() (key.Event, error)
	Write(s string) error
	Width() int
	HideCursor() error
	ShowCursor() error
	Close() error
}

var _ Terminal = (*console.Driver)(nil)

// SessionConfig configures a prompt session. The zero value targets the
// process terminal with the registry theme and built-in settings.
type SessionConfig struct {
	// In and Out are the terminal endpoints. Defaults: stdin and stdout.
	In  *os.File
	Out *os.File
	// Terminal replaces In and Out with an already opened device.
	Terminal Terminal
	// Theme overrides the process-wide registry theme for this session.
	Theme *theme.Theme
	// Settings tune spinner timing and note rendering. Default: the
	// built-in settings, without reading config files.
	Settings *config.Settings
}

// keyResult carries one ReadKey outcome from the reader goroutine.
type keyResult struct {
	ev  key.Event
	err error
}

// Session sequences prompts over one terminal. It is not safe to run
// two widgets at once; spinner and progress handles may render
// concurrently with the owning goroutine's work because every terminal
// write is serialized by the session lock.
type Session struct {
	term     Terminal
	renderer *frame.Renderer
	theme    *theme.Theme
	settings *config.Settings
	log      zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// mu serializes frame renders and commits.
	mu     sync.Mutex
	keys   chan keyResult
	closed chan struct{}

	// readDone is closed once the reader goroutine exits; readErr is set
	// before the close and never written again.
	readDone chan struct{}
	readErr  error

	closeOnce sync.Once
	closeErr  error
}

// NewSession opens the terminal, switches it to raw mode, captures the
// active theme and starts the single input reader goroutine. The caller
// must Close the session on every exit path.
func NewSession(ctx context.Context, cfg SessionConfig) (*Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	term := cfg.Terminal
	if term == nil {
		driver, err := console.Open(cfg.In, cfg.Out)
		if err != nil {
			return nil, err
		}
		term = driver
	}

	if err := term.MakeRaw(); err != nil {
		_ = term.Close()
		return nil, err
	}
	if err := term.HideCursor(); err != nil {
		_ = term.Close()
		return nil, err
	}

	th := cfg.Theme
	if th == nil {
		th = theme.Active()
	}
	settings := cfg.Settings
	if settings == nil {
		settings = config.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		term:     term,
		renderer: frame.NewRenderer(term),
		theme:    th,
		settings: settings,
		log:      logging.GetLogger("prompt"),
		ctx:      ctx,
		cancel:   cancel,
		keys:     make(chan keyResult, 8),
		closed:   make(chan struct{}),
		readDone: make(chan struct{}),
	}
	go s.readLoop()

	s.log.Debug().Str("theme", th.Name).Msg("Session opened")
	return s, nil
}

// readLoop forwards decoded keys to the session channel until the
// terminal or the session closes. A read error ends the loop: it is
// recorded on the session, then delivered once through the channel.
func (s *Session) readLoop() {
	for {
		ev, err := s.term.ReadKey()
		if err != nil {
			s.readErr = err
			close(s.readDone)
			select {
			case s.keys <- keyResult{err: err}:
			case <-s.closed:
			}
			return
		}
		select {
		case s.keys <- keyResult{ev: ev}:
		case <-s.closed:
			return
		}
	}
}

// Close restores the terminal and releases the input reader. It is safe
// to call more than once; only the first call does the work.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.closed)
		s.closeErr = s.term.Close()
		s.log.Debug().Msg("Session closed")
	})
	return s.closeErr
}

// Context returns the session's cancellation token. It is done once the
// user cancels a prompt, the parent context ends or the session closes;
// long-running work driven next to a spinner should watch it.
func (s *Session) Context() context.Context {
	return s.ctx
}

// guard refuses to start new prompts on a cancelled session.
func (s *Session) guard() error {
	if s.ctx.Err() != nil {
		return errors.New(errors.ErrCancelled, "session already cancelled")
	}
	return nil
}

// trip marks the session cancelled. Every later prompt returns a
// CANCELLED error without touching the terminal.
func (s *Session) trip() {
	s.cancel()
}

// nextKey blocks for one key event, session cancellation or reader
// failure. Keys buffered before a reader failure are still delivered.
func (s *Session) nextKey() (key.Event, error) {
	select {
	case <-s.ctx.Done():
		return key.Event{}, errors.New(errors.ErrCancelled, "session cancelled")
	case r := <-s.keys:
		if r.err != nil {
			return key.Event{}, r.err
		}
		return r.ev, nil
	case <-s.readDone:
		select {
		case r := <-s.keys:
			if r.err != nil {
				return key.Event{}, r.err
			}
			return r.ev, nil
		default:
			return key.Event{}, s.readErr
		}
	}
}

// render draws the widget's current frame.
func (s *Session) render(w widget.Widget) error {
	return s.paint(w.Frame(s.theme, s.term.Width()))
}

// paint replaces the live frame with lines, diffing against what is on
// screen.
func (s *Session) paint(lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.Render(lines)
}

// settle freezes the live frame into scrollback.
func (s *Session) settle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.Commit()
}

// print writes a block of lines straight to scrollback.
func (s *Session) print(lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.renderer.Render(lines); err != nil {
		return err
	}
	return s.renderer.Commit()
}

// Intro opens the session frame with a title, like "┌  create-my-app".
func (s *Session) Intro(title string) error {
	return s.print(s.theme.FormatIntro(title))
}

// Outro closes the session frame with a final message.
func (s *Session) Outro(message string) error {
	return s.print([]string{s.theme.FormatOutro(message)})
}

// OutroCancel closes the session frame after a cancellation. It still
// renders on a cancelled session.
func (s *Session) OutroCancel(message string) error {
	return s.print([]string{s.theme.FormatOutroCancel(message)})
}

// IsCancel reports whether err means the user abandoned a prompt. The
// usual pattern is to check it once after the last prompt and render
// OutroCancel.
func IsCancel(err error) bool {
	return errors.IsCancelled(err)
}

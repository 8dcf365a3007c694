package key

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/logging"
)

// maxSequence bounds escape sequence scanning; anything longer is dropped.
const maxSequence = 8

// sequences maps escape sequence bodies (the bytes after ESC) to key kinds.
// Both CSI ("[") and SS3 ("O") encodings are listed, plus the tilde-form
// variants some terminals send for Home, End and Delete.
var sequences = map[string]Kind{
	"[A": Up,
	"[B": Down,
	"[C": Right,
	"[D": Left,
	"OA": Up,
	"OB": Down,
	"OC": Right,
	"OD": Left,
	"[H": Home,
	"OH": Home,
	"[1~": Home,
	"[7~": Home,
	"[F": End,
	"OF": End,
	"[4~": End,
	"[8~": End,
	"[3~": Delete,
}

// Decoder turns raw terminal bytes into Events. Feed may be called with
// arbitrary chunk boundaries; an incomplete escape sequence or UTF-8 rune
// at the end of a chunk is carried over to the next call.
type Decoder struct {
	pending []byte
}

// NewDecoder returns an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends chunk to the pending buffer and returns every event that can
// be decoded from it. Undecodable bytes are dropped without producing an
// event.
func (d *Decoder) Feed(chunk []byte) []Event {
	d.pending = append(d.pending, chunk...)

	var events []Event
	for len(d.pending) > 0 {
		ev, n, ok := d.decodeOne()
		if n == 0 {
			// Incomplete sequence, wait for the next chunk.
			break
		}
		d.pending = d.pending[n:]
		if ok {
			events = append(events, ev)
		}
	}
	return events
}

// decodeOne decodes a single event from the head of the buffer. It returns
// the number of bytes consumed (0 when more input is needed) and whether an
// event was produced.
func (d *Decoder) decodeOne() (Event, int, bool) {
	switch b := d.pending[0]; {
	case b == 0x03:
		return Event{Kind: CtrlC}, 1, true
	case b == '\r' || b == '\n':
		return Event{Kind: Enter}, 1, true
	case b == '\t':
		return Event{Kind: Tab}, 1, true
	case b == 0x7f || b == 0x08:
		return Event{Kind: Backspace}, 1, true
	case b == 0x1b:
		return d.decodeEscape()
	case b < 0x20:
		d.discard(d.pending[:1], "control byte")
		return Event{}, 1, false
	default:
		return d.decodeRune()
	}
}

// decodeEscape handles a leading ESC byte. A pressed Escape key arrives as
// a bare ESC ending the chunk; CSI and SS3 sequences arrive with their tail
// in the same read.
func (d *Decoder) decodeEscape() (Event, int, bool) {
	if len(d.pending) == 1 {
		return Event{Kind: Escape}, 1, true
	}

	switch d.pending[1] {
	case '[':
		return d.decodeCSI()
	case 'O':
		if len(d.pending) < 3 {
			return Event{}, 0, false
		}
		if kind, found := sequences[string(d.pending[1:3])]; found {
			return Event{Kind: kind}, 3, true
		}
		d.discard(d.pending[:3], "unrecognized escape sequence")
		return Event{}, 3, false
	default:
		d.discard(d.pending[:2], "unrecognized escape sequence")
		return Event{}, 2, false
	}
}

// decodeCSI scans for the sequence terminator (a letter or '~'), waiting
// for more bytes while the buffer holds only part of a sequence.
func (d *Decoder) decodeCSI() (Event, int, bool) {
	for i := 2; i < len(d.pending) && i < maxSequence; i++ {
		b := d.pending[i]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if kind, found := sequences[string(d.pending[1 : i+1])]; found {
				return Event{Kind: kind}, i + 1, true
			}
			d.discard(d.pending[:i+1], "unrecognized escape sequence")
			return Event{}, i + 1, false
		}
	}
	if len(d.pending) >= maxSequence {
		d.discard(d.pending[:maxSequence], "escape sequence too long")
		return Event{}, maxSequence, false
	}
	return Event{}, 0, false
}

// decodeRune decodes one printable UTF-8 rune.
func (d *Decoder) decodeRune() (Event, int, bool) {
	if !utf8.FullRune(d.pending) {
		return Event{}, 0, false
	}
	r, size := utf8.DecodeRune(d.pending)
	if r == utf8.RuneError && size == 1 {
		d.discard(d.pending[:1], "invalid byte")
		return Event{}, 1, false
	}
	if !unicode.IsPrint(r) {
		d.discard(d.pending[:size], "unprintable rune")
		return Event{}, size, false
	}
	return Event{Kind: Rune, Rune: r}, size, true
}

// discard logs dropped bytes at debug level. Anomalies never surface as
// events or errors.
func (d *Decoder) discard(seq []byte, reason string) {
	logger := logging.GetLogger("key")
	logger.Debug().
		Str("code", string(errors.ErrDecodeAnomaly)).
		Str("bytes", fmt.Sprintf("%q", seq)).
		Str("reason", reason).
		Msg("Discarded undecodable input")
}

package widget

import (
	"slices"

	"github.com/parley-go/parley/pkg/key"
)

// lineBuffer is the editable rune buffer behind text-like widgets. The
// cursor is a rune offset in [0, len(runes)].
type lineBuffer struct {
	runes  []rune
	cursor int
}

func (b *lineBuffer) set(s string) {
	b.runes = []rune(s)
	b.cursor = len(b.runes)
}

// apply handles editing and motion keys; anything else is a no-op.
func (b *lineBuffer) apply(ev key.Event) {
	switch ev.Kind {
	case key.Rune:
		b.runes = slices.Insert(b.runes, b.cursor, ev.Rune)
		b.cursor++
	case key.Backspace:
		if b.cursor > 0 {
			b.runes = slices.Delete(b.runes, b.cursor-1, b.cursor)
			b.cursor--
		}
	case key.Delete:
		if b.cursor < len(b.runes) {
			b.runes = slices.Delete(b.runes, b.cursor, b.cursor+1)
		}
	case key.Left:
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Right:
		if b.cursor < len(b.runes) {
			b.cursor++
		}
	case key.Home:
		b.cursor = 0
	case key.End:
		b.cursor = len(b.runes)
	}
}

func (b *lineBuffer) String() string {
	return string(b.runes)
}

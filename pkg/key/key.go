// Package key decodes raw terminal bytes into a closed set of key events.
package key

// Kind identifies which key an Event represents.
type Kind int

const (
	// Rune is a printable character; Event.Rune carries it.
	Rune Kind = iota
	Enter
	Escape
	Backspace
	Delete
	Tab
	Up
	Down
	Left
	Right
	Home
	End
	CtrlC
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Rune:
		return "rune"
	case Enter:
		return "enter"
	case Escape:
		return "escape"
	case Backspace:
		return "backspace"
	case Delete:
		return "delete"
	case Tab:
		return "tab"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Home:
		return "home"
	case End:
		return "end"
	case CtrlC:
		return "ctrl+c"
	default:
		return "unknown"
	}
}

// Event is one decoded keystroke. Rune is set only when Kind is Rune.
type Event struct {
	Kind Kind
	Rune rune
}

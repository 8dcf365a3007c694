package theme

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities describes what the output terminal can display. The zero
// value means plain ASCII with no styling.
type Capabilities struct {
	Color   bool
	Unicode bool
}

// Detect determines terminal capabilities for the given output. NO_COLOR,
// piped output and colorless terminals all disable styling.
func Detect(output *os.File) Capabilities {
	caps := Capabilities{Unicode: supportsUnicode()}

	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return caps
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return caps
	}

	// Check terminal color support
	if termenv.ColorProfile() == termenv.Ascii {
		return caps
	}

	caps.Color = true
	return caps
}

// supportsUnicode reports whether the locale advertises UTF-8. The first
// set variable wins, in the usual precedence order.
func supportsUnicode() bool {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return strings.Contains(strings.ToUpper(v), "UTF")
		}
	}
	return false
}

package theme

import (
	"os"
	"sync"
)

// The process-wide active theme. Prompts capture it when they start, so
// swapping it mid-prompt affects only later prompts.
var (
	registryMu sync.Mutex
	active     *Theme
)

// Active returns the process-wide theme, detecting terminal capabilities
// and looking up the user override on first use.
func Active() *Theme {
	registryMu.Lock()
	defer registryMu.Unlock()

	if active == nil {
		active = UserTheme(Detect(os.Stdout))
	}
	return active
}

// SetTheme replaces the process-wide theme for prompts that start after
// the call.
func SetTheme(t *Theme) {
	registryMu.Lock()
	defer registryMu.Unlock()
	active = t
}

// ResetTheme returns the registry to the detected default.
func ResetTheme() {
	registryMu.Lock()
	defer registryMu.Unlock()
	active = nil
}

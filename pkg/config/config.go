// Package config loads engine settings layered from built-in defaults,
// the user's parley.toml under the XDG config home, and PARLEY_-prefixed
// environment variables.
package config

import (
	"strings"
	"time"

	"github.com/parley-go/parley/pkg/theme"
)

// Settings is the engine configuration.
type Settings struct {
	Theme   ThemeSettings   `koanf:"theme"`
	Spinner SpinnerSettings `koanf:"spinner"`
	Note    NoteSettings    `koanf:"note"`
}

// ThemeSettings selects the theme and overrides capability detection.
type ThemeSettings struct {
	// Name selects the theme: auto, clack or plain. auto follows the
	// user override discovery.
	Name string `koanf:"name"`
	// Color forces styling on or off; auto follows detection.
	Color string `koanf:"color"`
	// Unicode forces the symbol set; auto follows the locale.
	Unicode string `koanf:"unicode"`
}

// SpinnerSettings tunes the spinner animation.
type SpinnerSettings struct {
	// Interval is the animation tick period.
	Interval time.Duration `koanf:"interval"`
}

// NoteSettings tunes note box rendering.
type NoteSettings struct {
	// Markdown renders note bodies through glamour before boxing.
	Markdown bool `koanf:"markdown"`
}

// Default returns the built-in settings without touching the filesystem
// or environment.
func Default() *Settings {
	s := &Settings{}
	s.normalize()
	return s
}

// normalize fills unusable values with their documented defaults.
func (s *Settings) normalize() {
	if s.Theme.Name == "" {
		s.Theme.Name = "auto"
	}
	if s.Theme.Color == "" {
		s.Theme.Color = "auto"
	}
	if s.Theme.Unicode == "" {
		s.Theme.Unicode = "auto"
	}
	if s.Spinner.Interval <= 0 {
		s.Spinner.Interval = 100 * time.Millisecond
	}
}

// ResolveTheme applies the switch fields to detected capabilities and
// returns the configured theme.
func (t ThemeSettings) ResolveTheme(detected theme.Capabilities) *theme.Theme {
	caps := theme.Capabilities{
		Color:   toggle(t.Color, detected.Color),
		Unicode: toggle(t.Unicode, detected.Unicode),
	}

	switch strings.ToLower(t.Name) {
	case "plain":
		return theme.Plain()
	case "clack":
		return theme.Clack(caps)
	default:
		return theme.UserTheme(caps)
	}
}

// toggle resolves an on/off/auto switch against the detected value.
func toggle(v string, detected bool) bool {
	switch strings.ToLower(v) {
	case "on", "true", "yes", "1":
		return true
	case "off", "false", "no", "0":
		return false
	default:
		return detected
	}
}

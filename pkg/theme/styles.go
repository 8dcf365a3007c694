package theme

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/logging"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Faint         bool   `yaml:"faint,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
	Reverse       bool   `yaml:"reverse,omitempty"`
	Foreground    string `yaml:"foreground,omitempty"`
	Background    string `yaml:"background,omitempty"`
}

// SymbolDef pairs a Unicode glyph with its ASCII fallback
type SymbolDef struct {
	Unicode string `yaml:"unicode"`
	ASCII   string `yaml:"ascii"`
}

// Config represents a complete theme configuration
type Config struct {
	Colors  map[string]ColorDef  `yaml:"colors"`
	Styles  map[string]StyleDef  `yaml:"styles"`
	Symbols map[string]SymbolDef `yaml:"symbols"`
}

//go:embed clack.yaml
var embeddedClack []byte

// baseConfig holds the parsed built-in definitions; user themes layer
// over it so partial files stay valid.
var baseConfig Config

func init() {
	cfg, err := parseConfig(embeddedClack)
	if err != nil {
		// A theme must never take the process down; bare frames beat a panic.
		logger := logging.GetLogger("theme")
		logger.Warn().Err(err).Msg("Failed to parse embedded theme")
		cfg = Config{}
	}
	baseConfig = cfg
}

// Clack returns the built-in clack theme for the given capabilities.
func Clack(caps Capabilities) *Theme {
	return build("clack", baseConfig, caps)
}

// Plain returns the uncolored ASCII theme.
func Plain() *Theme {
	return build("plain", baseConfig, Capabilities{})
}

// Load builds a theme from a YAML file, layered over the built-in
// definitions.
func Load(name, path string, caps Capabilities) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeLoad, "cannot read theme file").
			WithDetail("path", path)
	}
	return LoadData(name, data, caps)
}

// LoadData builds a theme from YAML bytes, layered over the built-in
// definitions.
func LoadData(name string, data []byte, caps Capabilities) (*Theme, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}
	return build(name, merge(baseConfig, cfg), caps), nil
}

// UserTheme returns the user's theme override from the XDG config home,
// or the capability-appropriate built-in when no valid override exists.
func UserTheme(caps Capabilities) *Theme {
	path, err := xdg.SearchConfigFile(filepath.Join("parley", "theme.yaml"))
	if err != nil {
		return Clack(caps)
	}

	t, err := Load("user", path, caps)
	if err != nil {
		logger := logging.GetLogger("theme")
		logger.Warn().Err(err).Str("path", path).
			Msg("Ignoring broken user theme")
		return Clack(caps)
	}
	return t
}

func parseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrThemeParse, "cannot parse theme data")
	}
	return cfg, nil
}

// merge overlays override entries onto a copy of base.
func merge(base, override Config) Config {
	out := Config{
		Colors:  make(map[string]ColorDef, len(base.Colors)),
		Styles:  make(map[string]StyleDef, len(base.Styles)),
		Symbols: make(map[string]SymbolDef, len(base.Symbols)),
	}
	for k, v := range base.Colors {
		out.Colors[k] = v
	}
	for k, v := range override.Colors {
		out.Colors[k] = v
	}
	for k, v := range base.Styles {
		out.Styles[k] = v
	}
	for k, v := range override.Styles {
		out.Styles[k] = v
	}
	for k, v := range base.Symbols {
		out.Symbols[k] = v
	}
	for k, v := range override.Symbols {
		out.Symbols[k] = v
	}
	return out
}

// build assembles a Theme from a parsed configuration and the terminal
// capabilities.
func build(name string, cfg Config, caps Capabilities) *Theme {
	colors := make(map[string]lipgloss.AdaptiveColor)
	for cname, def := range cfg.Colors {
		colors[cname] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	styles := make(map[string]lipgloss.Style)
	for sname, def := range cfg.Styles {
		styles[sname] = buildStyle(def, colors)
	}

	var symbols Symbols
	for sym, def := range cfg.Symbols {
		value := def.Unicode
		if !caps.Unicode {
			value = def.ASCII
		}
		applySymbol(&symbols, sym, value)
	}

	return &Theme{
		Name:    name,
		Symbols: symbols,
		styles:  styles,
		color:   caps.Color,
	}
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	// Apply text formatting
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}
	if def.Strikethrough {
		style = style.Strikethrough(true)
	}
	if def.Reverse {
		style = style.Reverse(true)
	}

	// Apply colors
	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	return style
}

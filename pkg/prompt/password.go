package prompt

import "github.com/parley-go/parley/pkg/widget"

// PasswordConfig configures a masked text prompt.
type PasswordConfig struct {
	// Message is the question shown in the frame header.
	Message string
	// Mask replaces every typed rune on screen. Zero uses the theme's
	// mask glyph.
	Mask rune
	// Validate rejects a candidate with a non-nil error. nil accepts
	// all.
	Validate func(string) error
}

// Password runs a text prompt that never echoes its content; only mask
// glyphs reach the terminal.
func Password(s *Session, cfg PasswordConfig) (string, error) {
	w := widget.NewPassword(widget.PasswordConfig{
		Message:  cfg.Message,
		Mask:     cfg.Mask,
		Validate: cfg.Validate,
	})
	if err := run(s, w, nil); err != nil {
		return "", err
	}
	return w.Value(), nil
}

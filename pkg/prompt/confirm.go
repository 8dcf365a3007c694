package prompt

import "github.com/parley-go/parley/pkg/widget"

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	// Message is the question shown in the frame header.
	Message string
	// Initial focuses Yes when true. The default focuses No.
	Initial bool
}

// Confirm runs a yes/no prompt. Left, Right and Tab move focus, Enter
// submits it, and the y and n keys answer immediately.
func Confirm(s *Session, cfg ConfirmConfig) (bool, error) {
	w := widget.NewConfirm(widget.ConfirmConfig{
		Message: cfg.Message,
		Initial: cfg.Initial,
	})
	if err := run(s, w, nil); err != nil {
		return false, err
	}
	return w.Value(), nil
}

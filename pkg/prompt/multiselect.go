package prompt

import "github.com/parley-go/parley/pkg/widget"

// MultiSelectConfig configures a multiple-choice prompt.
type MultiSelectConfig[T any] struct {
	// Message is the question shown in the frame header.
	Message string
	// Options are the entries, rendered in order.
	Options []Option[T]
	// InitialIndexes pre-checks entries by position; out-of-range
	// positions are ignored.
	InitialIndexes []int
	// Validate rejects a candidate set with a non-nil error. nil
	// accepts any set, including the empty one.
	Validate func([]T) error
}

// MultiSelect runs a multiple-choice prompt. Space toggles the focused
// entry, Enter submits the checked set in list order.
func MultiSelect[T any](s *Session, cfg MultiSelectConfig[T]) ([]T, error) {
	w := widget.NewMultiSelect(widget.MultiSelectConfig[T]{
		Message:        cfg.Message,
		Options:        widgetOptions(cfg.Options),
		InitialIndexes: cfg.InitialIndexes,
		Validate:       cfg.Validate,
	})
	if err := run(s, w, nil); err != nil {
		return nil, err
	}
	return w.Values(), nil
}

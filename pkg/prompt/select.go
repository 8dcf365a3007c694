package prompt

import "github.com/parley-go/parley/pkg/widget"

// Option is one selectable entry of a Select or MultiSelect prompt.
type Option[T any] struct {
	// Value is what the prompt returns when this entry is chosen.
	Value T
	// Label is what the user sees.
	Label string
	// Hint renders next to the entry while it has focus.
	Hint string
}

// SelectConfig configures a single-choice prompt.
type SelectConfig[T any] struct {
	// Message is the question shown in the frame header.
	Message string
	// Options are the entries, rendered in order.
	Options []Option[T]
	// InitialIndex focuses an entry at start; out-of-range values focus
	// the first one.
	InitialIndex int
}

// Select runs a single-choice prompt. Up and Down wrap around both ends
// of the list; Enter returns the focused option's value.
func Select[T any](s *Session, cfg SelectConfig[T]) (T, error) {
	w := widget.NewSelect(widget.SelectConfig[T]{
		Message:      cfg.Message,
		Options:      widgetOptions(cfg.Options),
		InitialIndex: cfg.InitialIndex,
	})
	if err := run(s, w, nil); err != nil {
		var zero T
		return zero, err
	}
	return w.Value(), nil
}

func widgetOptions[T any](opts []Option[T]) []widget.Option[T] {
	out := make([]widget.Option[T], len(opts))
	for i, o := range opts {
		out[i] = widget.Option[T]{Value: o.Value, Label: o.Label, Hint: o.Hint}
	}
	return out
}

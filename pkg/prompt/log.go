package prompt

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Step prints a completed-step line into the session frame.
func (s *Session) Step(message string) error {
	return s.print(s.theme.FormatLog(message, s.theme.StepSymbol()))
}

// Info prints an informational line into the session frame.
func (s *Session) Info(message string) error {
	return s.print(s.theme.FormatLog(message, s.theme.InfoSymbol()))
}

// Warn prints a warning line into the session frame.
func (s *Session) Warn(message string) error {
	return s.print(s.theme.FormatLog(message, s.theme.WarnSymbol()))
}

// Error prints an error line into the session frame.
func (s *Session) Error(message string) error {
	return s.print(s.theme.FormatLog(message, s.theme.ErrorSymbol()))
}

// Remark prints a de-emphasized side note into the session frame.
func (s *Session) Remark(message string) error {
	return s.print(s.theme.FormatLog(message, s.theme.RemarkSymbol()))
}

// Note prints a titled box. With the markdown setting on, the body is
// rendered from markdown to terminal text first.
func (s *Session) Note(title, message string) error {
	width := s.term.Width()
	if s.settings.Note.Markdown {
		message = s.renderMarkdown(message, width-8)
	}
	return s.print(s.theme.FormatNote(title, message, width))
}

// renderMarkdown formats a markdown body as plain terminal text. The
// note box is padded by display width, so the output must stay free of
// escape sequences; the notty style guarantees that. Unrenderable input
// falls back to the raw text.
func (s *Session) renderMarkdown(text string, wrap int) string {
	options := []glamour.TermRendererOption{
		glamour.WithStylePath("notty"),
	}
	if wrap > 0 {
		options = append(options, glamour.WithWordWrap(wrap))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		s.log.Debug().Err(err).Msg("Markdown note fell back to raw text")
		return text
	}

	lines := strings.Split(strings.Trim(rendered, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

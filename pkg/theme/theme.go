// Package theme maps rendering states and roles to the symbols and
// lipgloss styles widgets draw with. The built-in clack theme implements
// the @clack/prompts look; plain is its uncolored ASCII counterpart.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// State is the rendering state of a prompt. It drives symbol and color
// selection for every visual element.
type State int

const (
	// StateActive is a prompt waiting for input.
	StateActive State = iota
	// StateCancel is a prompt abandoned by the user.
	StateCancel
	// StateSubmit is a prompt with an accepted value.
	StateSubmit
	// StateError is a prompt whose submit attempt was rejected.
	StateError
)

// Role names a styled element. Themes map roles to lipgloss styles;
// resolution is total, unknown roles resolve to the empty style.
type Role string

const (
	RoleTitle          Role = "title"
	RoleBarActive      Role = "bar_active"
	RoleBarCancel      Role = "bar_cancel"
	RoleBarSubmit      Role = "bar_submit"
	RoleBarError       Role = "bar_error"
	RoleActiveItem     Role = "active_item"
	RoleInactiveItem   Role = "inactive_item"
	RoleSelectedItem   Role = "selected_item"
	RoleCheckboxActive Role = "checkbox_active"
	RolePlaceholder    Role = "placeholder"
	RoleHint           Role = "hint"
	RoleError          Role = "error"
	RoleSuccess        Role = "success"
	RoleCancel         Role = "cancel"
	RoleInfo           Role = "info"
	RoleWarn           Role = "warn"
	RoleSpinner        Role = "spinner"
	RoleInputSubmit    Role = "input_submit"
	RoleInputCancel    Role = "input_cancel"
)

// Theme holds the symbol table and role styles every widget renders with.
type Theme struct {
	Name    string
	Symbols Symbols

	styles map[string]lipgloss.Style
	color  bool
}

// Style resolves a role to its lipgloss style. Colorless themes resolve
// every role to the empty style.
func (t *Theme) Style(role Role) lipgloss.Style {
	if !t.color {
		return lipgloss.NewStyle()
	}
	if s, ok := t.styles[string(role)]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Styled reports whether the theme renders color and text attributes.
func (t *Theme) Styled() bool {
	return t.color
}

// BarStyle returns the style of the vertical side bar.
func (t *Theme) BarStyle(state State) lipgloss.Style {
	switch state {
	case StateActive:
		return t.Style(RoleBarActive)
	case StateCancel:
		return t.Style(RoleBarCancel)
	case StateSubmit:
		return t.Style(RoleBarSubmit)
	default:
		return t.Style(RoleBarError)
	}
}

// SymbolStyle returns the style of the state symbol; submitted prompts
// get the success color, all others follow the bar.
func (t *Theme) SymbolStyle(state State) lipgloss.Style {
	if state == StateSubmit {
		return t.Style(RoleSuccess)
	}
	return t.BarStyle(state)
}

// StateSymbol returns the styled symbol of the current rendering state.
func (t *Theme) StateSymbol(state State) string {
	var sym string
	switch state {
	case StateActive:
		sym = t.Symbols.StepActive
	case StateCancel:
		sym = t.Symbols.StepCancel
	case StateSubmit:
		sym = t.Symbols.StepSubmit
	default:
		sym = t.Symbols.StepError
	}
	return t.SymbolStyle(state).Render(sym)
}

// InputStyle returns the style of entered input text.
func (t *Theme) InputStyle(state State) lipgloss.Style {
	switch state {
	case StateCancel:
		return t.Style(RoleInputCancel)
	case StateSubmit:
		return t.Style(RoleInputSubmit)
	default:
		return lipgloss.NewStyle()
	}
}

// PlaceholderStyle returns the style of ghost placeholder text.
func (t *Theme) PlaceholderStyle(state State) lipgloss.Style {
	return t.Style(RolePlaceholder)
}

// StyledCursor renders input split around the cursor cell, reversing the
// cell so it reads as a block cursor. An empty cell means the cursor sits
// past the end of the input.
func (t *Theme) StyledCursor(base lipgloss.Style, left, cell, right string) string {
	if cell == "" {
		cell = " "
	}
	cursor := lipgloss.NewStyle()
	if t.color {
		cursor = cursor.Reverse(true)
	}

	var b strings.Builder
	if left != "" {
		b.WriteString(base.Render(left))
	}
	b.WriteString(cursor.Render(cell))
	if right != "" {
		b.WriteString(base.Render(right))
	}
	return b.String()
}

// PasswordMask returns the mask character for password input.
func (t *Theme) PasswordMask() rune {
	for _, r := range t.Symbols.PasswordMask {
		return r
	}
	return '*'
}

// SpinnerFrames returns the animation glyphs in tick order.
func (t *Theme) SpinnerFrames() []string {
	var frames []string
	for _, r := range t.Symbols.Spinner {
		frames = append(frames, string(r))
	}
	return frames
}

// FormatHeader renders the prompt header line, like "◆  Pick a kind".
func (t *Theme) FormatHeader(state State, prompt string) string {
	if prompt == "" {
		return t.StateSymbol(state)
	}
	return t.StateSymbol(state) + "  " + prompt
}

// FormatLine renders one frame body line behind the side bar.
func (t *Theme) FormatLine(state State, content string) string {
	bar := t.BarStyle(state).Render(t.Symbols.Bar)
	if content == "" {
		return bar
	}
	return bar + "  " + content
}

// FormatFooter renders the state-dependent closing line of a prompt frame.
func (t *Theme) FormatFooter(state State, errMsg string) string {
	style := t.BarStyle(state)
	switch state {
	case StateActive:
		return style.Render(t.Symbols.BarEnd)
	case StateCancel:
		return style.Render(t.Symbols.BarEnd + "  Operation cancelled.")
	case StateSubmit:
		return style.Render(t.Symbols.Bar)
	default:
		return style.Render(t.Symbols.BarEnd + "  " + errMsg)
	}
}

// FormatIntro renders the session opening, like "┌  create-my-app" plus
// the connecting bar.
func (t *Theme) FormatIntro(title string) []string {
	style := t.BarStyle(StateSubmit)
	first := style.Render(t.Symbols.BarStart)
	if title != "" {
		first += "  " + title
	}
	return []string{first, style.Render(t.Symbols.Bar)}
}

// FormatOutro renders the session closing line, like "└  done".
func (t *Theme) FormatOutro(message string) string {
	line := t.BarStyle(StateSubmit).Render(t.Symbols.BarEnd)
	if message != "" {
		line += "  " + message
	}
	return line
}

// FormatOutroCancel renders the closing line of a cancelled session.
func (t *Theme) FormatOutroCancel(message string) string {
	line := t.BarStyle(StateSubmit).Render(t.Symbols.BarEnd)
	if message != "" {
		line += "  " + t.Style(RoleCancel).Render(message)
	}
	return line
}

// RadioItem renders one select option without the frame bar. Unselected
// items vanish on submit and cancel.
func (t *Theme) RadioItem(state State, selected bool, label, hint string) string {
	if (state == StateCancel || state == StateSubmit) && !selected {
		return ""
	}

	var symbol string
	if state == StateActive {
		if selected {
			symbol = t.Style(RoleActiveItem).Render(t.Symbols.RadioActive)
		} else {
			symbol = t.Style(RoleInactiveItem).Render(t.Symbols.RadioInactive)
		}
	}

	var labelStr string
	if label != "" {
		if selected {
			labelStr = t.InputStyle(state).Render(label)
		} else {
			labelStr = t.PlaceholderStyle(state).Render(label)
		}
	}

	var hintStr string
	if (state == StateActive || state == StateError) && hint != "" && selected {
		hintStr = t.Style(RoleHint).Render("(" + hint + ")")
	}

	return join(symbol, labelStr, hintStr)
}

// CheckboxItem renders one multiselect option without the frame bar.
// Unchecked items vanish on submit and cancel; active marks the item
// under the cursor, selected marks checked membership.
func (t *Theme) CheckboxItem(state State, selected, active bool, label, hint string) string {
	if (state == StateCancel || state == StateSubmit) && !selected {
		return ""
	}

	var symbol string
	if state == StateActive || state == StateError {
		switch {
		case selected:
			symbol = t.Style(RoleSelectedItem).Render(t.Symbols.CheckboxSelected)
		case active:
			symbol = t.Style(RoleCheckboxActive).Render(t.Symbols.CheckboxActive)
		default:
			symbol = t.Style(RoleInactiveItem).Render(t.Symbols.CheckboxInactive)
		}
	}

	var labelStr string
	if label != "" {
		labelStr = t.checkboxLabelStyle(state, selected, active).Render(label)
	}

	var hintStr string
	if (state == StateActive || state == StateError) && hint != "" && active {
		hintStr = t.Style(RoleHint).Render("(" + hint + ")")
	}

	return join(symbol, labelStr, hintStr)
}

func (t *Theme) checkboxLabelStyle(state State, selected, active bool) lipgloss.Style {
	switch {
	case state == StateCancel && selected:
		return t.Style(RoleInputCancel)
	case state == StateSubmit && selected:
		return t.Style(RoleInputSubmit)
	case !active:
		return t.Style(RoleInactiveItem)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatConfirm renders the yes/no line of a confirmation prompt.
func (t *Theme) FormatConfirm(state State, yes bool) string {
	yesItem := t.RadioItem(state, yes, "Yes", "")
	noItem := t.RadioItem(state, !yes, "No", "")

	if state == StateActive || state == StateError {
		divider := t.PlaceholderStyle(state).Render(" / ")
		return t.FormatLine(state, yesItem+divider+noItem)
	}
	return t.FormatLine(state, yesItem+noItem)
}

// FormatLog renders a log message: the given symbol on the first line,
// the side bar on continuation lines, and a trailing bar connecting to
// whatever renders next.
func (t *Theme) FormatLog(text, symbol string) []string {
	bar := t.BarStyle(StateSubmit).Render(t.Symbols.Bar)

	var lines []string
	for i, line := range strings.Split(text, "\n") {
		prefix := bar
		if i == 0 {
			prefix = symbol
		}
		if line == "" {
			lines = append(lines, prefix)
			continue
		}
		lines = append(lines, prefix+"  "+line)
	}
	return append(lines, bar)
}

// FormatNote renders a boxed multiline note. A positive maxWidth word-wraps
// the body so the box fits the terminal.
func (t *Theme) FormatNote(title, message string, maxWidth int) []string {
	if maxWidth > 8 {
		message = wordwrap.String(message, maxWidth-8)
	}

	bodyLines := append([]string{""}, strings.Split(message, "\n")...)
	bodyLines = append(bodyLines, "")

	width := runewidth.StringWidth(title)
	for _, line := range bodyLines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	width += 2

	barStyle := t.BarStyle(StateSubmit)
	textStyle := t.InputStyle(StateSubmit)
	bar := barStyle.Render(t.Symbols.Bar)

	lines := []string{
		t.StateSymbol(StateSubmit) + "  " + title + " " +
			barStyle.Render(strings.Repeat(t.Symbols.BarH, width-runewidth.StringWidth(title))+t.Symbols.CornerTopRight),
	}
	for _, line := range bodyLines {
		padding := strings.Repeat(" ", width-runewidth.StringWidth(line)+1)
		content := line
		if content != "" {
			content = textStyle.Render(content)
		}
		lines = append(lines, bar+"  "+content+padding+bar)
	}
	footer := barStyle.Render(t.Symbols.ConnectLeft + strings.Repeat(t.Symbols.BarH, width+3) + t.Symbols.CornerBottomRight)
	return append(lines, footer, bar)
}

// InfoSymbol returns the styled info bullet.
func (t *Theme) InfoSymbol() string {
	return t.Style(RoleInfo).Render(t.Symbols.Info)
}

// WarnSymbol returns the styled warning triangle.
func (t *Theme) WarnSymbol() string {
	return t.Style(RoleWarn).Render(t.Symbols.Warn)
}

// ErrorSymbol returns the styled error block.
func (t *Theme) ErrorSymbol() string {
	return t.Style(RoleError).Render(t.Symbols.Error)
}

// RemarkSymbol returns the styled connector used for side remarks.
func (t *Theme) RemarkSymbol() string {
	return t.BarStyle(StateSubmit).Render(t.Symbols.ConnectLeft)
}

// StepSymbol returns the styled symbol marking a completed step.
func (t *Theme) StepSymbol() string {
	return t.Style(RoleSuccess).Render(t.Symbols.StepSubmit)
}

// ActiveSymbol returns the styled symbol marking a highlighted step.
func (t *Theme) ActiveSymbol() string {
	return t.Style(RoleSuccess).Render(t.Symbols.StepActive)
}

// join concatenates non-empty parts with single spaces.
func join(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

package theme

// Symbols is the glyph vocabulary a theme renders with. Theme files carry
// a Unicode and an ASCII form for each entry; a loaded theme holds the
// form matching the terminal's capabilities.
type Symbols struct {
	StepActive string
	StepCancel string
	StepError  string
	StepSubmit string

	BarStart string
	Bar      string
	BarEnd   string

	RadioActive      string
	RadioInactive    string
	CheckboxActive   string
	CheckboxSelected string
	CheckboxInactive string
	PasswordMask     string

	BarH              string
	CornerTopRight    string
	ConnectLeft       string
	CornerBottomRight string

	Info  string
	Warn  string
	Error string

	Spinner        string
	ProgressFilled string
	ProgressEmpty  string
}

// applySymbol assigns a named theme-file entry to its Symbols field.
// Unknown names are ignored so older engines tolerate newer theme files.
func applySymbol(s *Symbols, name, value string) {
	switch name {
	case "step_active":
		s.StepActive = value
	case "step_cancel":
		s.StepCancel = value
	case "step_error":
		s.StepError = value
	case "step_submit":
		s.StepSubmit = value
	case "bar_start":
		s.BarStart = value
	case "bar":
		s.Bar = value
	case "bar_end":
		s.BarEnd = value
	case "radio_active":
		s.RadioActive = value
	case "radio_inactive":
		s.RadioInactive = value
	case "checkbox_active":
		s.CheckboxActive = value
	case "checkbox_selected":
		s.CheckboxSelected = value
	case "checkbox_inactive":
		s.CheckboxInactive = value
	case "password_mask":
		s.PasswordMask = value
	case "bar_h":
		s.BarH = value
	case "corner_top_right":
		s.CornerTopRight = value
	case "connect_left":
		s.ConnectLeft = value
	case "corner_bottom_right":
		s.CornerBottomRight = value
	case "info":
		s.Info = value
	case "warn":
		s.Warn = value
	case "error":
		s.Error = value
	case "spinner":
		s.Spinner = value
	case "progress_filled":
		s.ProgressFilled = value
	case "progress_empty":
		s.ProgressEmpty = value
	}
}

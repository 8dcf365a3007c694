package key_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parley-go/parley/pkg/key"
)

func TestFeedSingleBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []key.Event
	}{
		{
			name:  "ascii_rune",
			input: []byte("a"),
			want:  []key.Event{{Kind: key.Rune, Rune: 'a'}},
		},
		{
			name:  "space_is_a_rune",
			input: []byte(" "),
			want:  []key.Event{{Kind: key.Rune, Rune: ' '}},
		},
		{
			name:  "carriage_return_is_enter",
			input: []byte{0x0d},
			want:  []key.Event{{Kind: key.Enter}},
		},
		{
			name:  "line_feed_is_enter",
			input: []byte{0x0a},
			want:  []key.Event{{Kind: key.Enter}},
		},
		{
			name:  "tab",
			input: []byte{0x09},
			want:  []key.Event{{Kind: key.Tab}},
		},
		{
			name:  "del_is_backspace",
			input: []byte{0x7f},
			want:  []key.Event{{Kind: key.Backspace}},
		},
		{
			name:  "bs_is_backspace",
			input: []byte{0x08},
			want:  []key.Event{{Kind: key.Backspace}},
		},
		{
			name:  "ctrl_c",
			input: []byte{0x03},
			want:  []key.Event{{Kind: key.CtrlC}},
		},
		{
			name:  "lone_escape",
			input: []byte{0x1b},
			want:  []key.Event{{Kind: key.Escape}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := key.NewDecoder()
			assert.Equal(t, tt.want, d.Feed(tt.input))
		})
	}
}

func TestFeedEscapeSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  key.Kind
	}{
		{"csi_up", "\x1b[A", key.Up},
		{"csi_down", "\x1b[B", key.Down},
		{"csi_right", "\x1b[C", key.Right},
		{"csi_left", "\x1b[D", key.Left},
		{"ss3_up", "\x1bOA", key.Up},
		{"ss3_down", "\x1bOB", key.Down},
		{"ss3_right", "\x1bOC", key.Right},
		{"ss3_left", "\x1bOD", key.Left},
		{"csi_delete", "\x1b[3~", key.Delete},
		{"csi_home", "\x1b[H", key.Home},
		{"csi_home_tilde", "\x1b[1~", key.Home},
		{"csi_home_tilde_alt", "\x1b[7~", key.Home},
		{"ss3_home", "\x1bOH", key.Home},
		{"csi_end", "\x1b[F", key.End},
		{"csi_end_tilde", "\x1b[4~", key.End},
		{"csi_end_tilde_alt", "\x1b[8~", key.End},
		{"ss3_end", "\x1bOF", key.End},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := key.NewDecoder()
			got := d.Feed([]byte(tt.input))
			assert.Equal(t, []key.Event{{Kind: tt.want}}, got)
		})
	}
}

func TestFeedUTF8(t *testing.T) {
	d := key.NewDecoder()
	got := d.Feed([]byte("héllo 世界"))

	want := []key.Event{
		{Kind: key.Rune, Rune: 'h'},
		{Kind: key.Rune, Rune: 'é'},
		{Kind: key.Rune, Rune: 'l'},
		{Kind: key.Rune, Rune: 'l'},
		{Kind: key.Rune, Rune: 'o'},
		{Kind: key.Rune, Rune: ' '},
		{Kind: key.Rune, Rune: '世'},
		{Kind: key.Rune, Rune: '界'},
	}
	assert.Equal(t, want, got)
}

func TestFeedReassemblesSplitSequences(t *testing.T) {
	t.Run("escape_sequence_split_across_chunks", func(t *testing.T) {
		d := key.NewDecoder()

		assert.Empty(t, d.Feed([]byte{0x1b, '['}))
		assert.Equal(t, []key.Event{{Kind: key.Up}}, d.Feed([]byte{'A'}))
	})

	t.Run("tilde_sequence_split_across_chunks", func(t *testing.T) {
		d := key.NewDecoder()

		assert.Empty(t, d.Feed([]byte("\x1b[3")))
		assert.Equal(t, []key.Event{{Kind: key.Delete}}, d.Feed([]byte("~")))
	})

	t.Run("utf8_rune_split_across_chunks", func(t *testing.T) {
		d := key.NewDecoder()
		raw := []byte("世") // three bytes

		assert.Empty(t, d.Feed(raw[:1]))
		assert.Empty(t, d.Feed(raw[1:2]))
		assert.Equal(t, []key.Event{{Kind: key.Rune, Rune: '世'}}, d.Feed(raw[2:]))
	})

	t.Run("ss3_split_across_chunks", func(t *testing.T) {
		d := key.NewDecoder()

		assert.Empty(t, d.Feed([]byte{0x1b, 'O'}))
		assert.Equal(t, []key.Event{{Kind: key.Down}}, d.Feed([]byte{'B'}))
	})
}

func TestFeedDiscardsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"unknown_csi_sequence", []byte("\x1b[Z")},
		{"unknown_ss3_sequence", []byte("\x1bOZ")},
		{"escape_followed_by_plain_byte", []byte{0x1b, 'x'}},
		{"stray_control_byte", []byte{0x01}},
		{"invalid_utf8_byte", []byte{0xff}},
		{"unterminated_long_sequence", []byte("\x1b[123456")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := key.NewDecoder()
			assert.Empty(t, d.Feed(tt.input))
		})
	}
}

func TestFeedMixedStream(t *testing.T) {
	d := key.NewDecoder()
	got := d.Feed([]byte("ab\x1b[Ac\r"))

	want := []key.Event{
		{Kind: key.Rune, Rune: 'a'},
		{Kind: key.Rune, Rune: 'b'},
		{Kind: key.Up},
		{Kind: key.Rune, Rune: 'c'},
		{Kind: key.Enter},
	}
	assert.Equal(t, want, got)
}

func TestFeedRecoversAfterGarbage(t *testing.T) {
	d := key.NewDecoder()

	// An unknown sequence is dropped; decoding picks up cleanly after it.
	got := d.Feed([]byte("\x1b[Zq"))
	assert.Equal(t, []key.Event{{Kind: key.Rune, Rune: 'q'}}, got)
}

func TestCtrlCAlwaysDecodes(t *testing.T) {
	d := key.NewDecoder()

	// CtrlC embedded mid-stream still comes out, surrounding bytes intact.
	got := d.Feed([]byte{'x', 0x03, 'y'})
	want := []key.Event{
		{Kind: key.Rune, Rune: 'x'},
		{Kind: key.CtrlC},
		{Kind: key.Rune, Rune: 'y'},
	}
	assert.Equal(t, want, got)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "enter", key.Enter.String())
	assert.Equal(t, "ctrl+c", key.CtrlC.String())
	assert.Equal(t, "rune", key.Rune.String())
	assert.Equal(t, "unknown", key.Kind(99).String())
}

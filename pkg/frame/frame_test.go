package frame_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/frame"
)

type sink struct {
	b     strings.Builder
	width int
	err   error
}

func (s *sink) Write(out string) error {
	if s.err != nil {
		return s.err
	}
	s.b.WriteString(out)
	return nil
}

func (s *sink) Width() int { return s.width }

func (s *sink) take() string {
	out := s.b.String()
	s.b.Reset()
	return out
}

func TestRenderInitialFrame(t *testing.T) {
	out := &sink{width: 80}
	r := frame.NewRenderer(out)

	require.NoError(t, r.Render([]string{"*  Pick", "|  a", "-"}))

	assert.Equal(t, "\r*  Pick\r\n|  a\r\n-", out.take())
	assert.Equal(t, 3, r.Lines())
}

func TestRenderIdenticalFrameWritesNothing(t *testing.T) {
	out := &sink{width: 80}
	r := frame.NewRenderer(out)
	require.NoError(t, r.Render([]string{"*  Pick", "|  a"}))
	out.take()

	require.NoError(t, r.Render([]string{"*  Pick", "|  a"}))

	assert.Empty(t, out.take())
}

func TestRenderRepaintsChangedRows(t *testing.T) {
	out := &sink{width: 80}
	r := frame.NewRenderer(out)
	require.NoError(t, r.Render([]string{"*  Pick", "|  a", "-"}))
	out.take()

	require.NoError(t, r.Render([]string{"*  Pick", "|  b", "-"}))

	assert.Equal(t, "\r\x1b[1A\x1b[0J|  b\r\n-", out.take())
}

func TestRenderShrinkingFrameClearsTail(t *testing.T) {
	out := &sink{width: 80}
	r := frame.NewRenderer(out)
	require.NoError(t, r.Render([]string{"*  Pick", "|  a", "-"}))
	out.take()

	require.NoError(t, r.Render([]string{"*  Pick"}))

	assert.Equal(t, "\r\x1b[1A\x1b[0J\x1b[1A", out.take())
	assert.Equal(t, 1, r.Lines())
}

func TestRenderTruncatesToWidth(t *testing.T) {
	out := &sink{width: 5}
	r := frame.NewRenderer(out)

	require.NoError(t, r.Render([]string{"abcdefgh"}))

	assert.Equal(t, "\rabcde", out.take())
}

func TestCommitSealsFrame(t *testing.T) {
	out := &sink{width: 80}
	r := frame.NewRenderer(out)
	require.NoError(t, r.Render([]string{"o  done"}))
	out.take()

	require.NoError(t, r.Commit())
	assert.Equal(t, "\r\n", out.take())
	assert.Equal(t, 0, r.Lines())

	// Committing with nothing on screen is a no-op.
	require.NoError(t, r.Commit())
	assert.Empty(t, out.take())

	// The next frame paints fresh below the sealed one.
	require.NoError(t, r.Render([]string{"*  next"}))
	assert.Equal(t, "\r*  next", out.take())
}

func TestClearWipesFrame(t *testing.T) {
	out := &sink{width: 80}
	r := frame.NewRenderer(out)
	require.NoError(t, r.Render([]string{"a", "b"}))
	out.take()

	require.NoError(t, r.Clear())

	assert.Equal(t, "\r\x1b[1A\x1b[0J", out.take())
	assert.Equal(t, 0, r.Lines())
}

func TestRenderKeepsStateOnWriteError(t *testing.T) {
	out := &sink{width: 80, err: errors.New(errors.ErrTerminalWrite, "broken pipe")}
	r := frame.NewRenderer(out)

	err := r.Render([]string{"a"})

	require.Error(t, err)
	assert.Equal(t, 0, r.Lines())
}

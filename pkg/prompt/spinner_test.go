package prompt_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-go/parley/pkg/key"
	"github.com/parley-go/parley/pkg/prompt"
)

func TestSpinReturnsTaskResult(t *testing.T) {
	term := newScriptTerminal()
	s := newTestSession(t, term)

	task := func(ctx context.Context) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return "v1.2.3", nil
	}

	got, err := prompt.Spin(s, prompt.SpinnerConfig{
		Message:     "Installing via npm",
		StopMessage: "Installed via npm",
		Interval:    2 * time.Millisecond,
	}, task)

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
	out := term.output()
	assert.Contains(t, out, "•  Installing via npm")
	assert.Contains(t, out, "o  Installed via npm")
}

func TestSpinSurfacesTaskError(t *testing.T) {
	term := newScriptTerminal()
	s := newTestSession(t, term)

	task := func(ctx context.Context) (int, error) {
		return 0, fmt.Errorf("registry unreachable")
	}

	_, err := prompt.Spin(s, prompt.SpinnerConfig{Message: "Installing"}, task)

	require.Error(t, err)
	assert.False(t, prompt.IsCancel(err))
	assert.ErrorContains(t, err, "registry unreachable")
	// Without a FailMessage the error text labels the outcome row.
	assert.Contains(t, term.output(), "x  registry unreachable")
}

func TestSpinCtrlCCancelsTask(t *testing.T) {
	term := newScriptTerminal()
	s := newTestSession(t, term)

	taskSawCancel := make(chan struct{})
	task := func(ctx context.Context) (string, error) {
		<-ctx.Done()
		close(taskSawCancel)
		return "", ctx.Err()
	}

	term.press(key.CtrlC)

	_, err := prompt.Spin(s, prompt.SpinnerConfig{
		Message:  "Installing",
		Interval: 2 * time.Millisecond,
	}, task)

	require.Error(t, err)
	assert.True(t, prompt.IsCancel(err))

	select {
	case <-taskSawCancel:
	default:
		t.Fatal("task never observed the cancellation")
	}
	assert.Contains(t, term.output(), "x  Installing")

	// The trip is session-wide.
	_, err = prompt.Text(s, prompt.TextConfig{Message: "Where?"})
	assert.True(t, prompt.IsCancel(err))
}

func TestManualSpinnerLifecycle(t *testing.T) {
	term := newScriptTerminal()
	s := newTestSession(t, term)

	sp := prompt.NewSpinner(s, prompt.SpinnerConfig{
		Message:  "Resolving packages",
		Interval: 2 * time.Millisecond,
	})
	sp.Start("")
	time.Sleep(10 * time.Millisecond)
	sp.SetMessage("Fetching tarballs")
	require.NoError(t, sp.Stop("Installed"))

	out := term.output()
	assert.Contains(t, out, "•  Resolving packages")
	assert.Contains(t, out, "Fetching tarballs")
	assert.Contains(t, out, "o  Installed")

	// Outcomes are one-shot.
	require.NoError(t, sp.Fail("broken"))
	assert.NotContains(t, term.output(), "broken")
}

func TestManualSpinnerFail(t *testing.T) {
	term := newScriptTerminal()
	s := newTestSession(t, term)

	sp := prompt.NewSpinner(s, prompt.SpinnerConfig{Message: "Linking"})
	sp.Start("")
	require.NoError(t, sp.Fail("Link step failed"))

	assert.Contains(t, term.output(), "x  Link step failed")
}

func TestManualSpinnerInertAfterSessionCancel(t *testing.T) {
	term := newScriptTerminal()
	s := newTestSession(t, term)

	term.press(key.CtrlC)
	_, err := prompt.Text(s, prompt.TextConfig{Message: "Where?"})
	require.True(t, prompt.IsCancel(err))

	before := len(term.output())
	sp := prompt.NewSpinner(s, prompt.SpinnerConfig{Message: "Installing"})
	sp.Start("")
	assert.Equal(t, before, len(term.output()))
}

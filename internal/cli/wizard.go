package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/parley-go/parley/pkg/prompt"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Run the project scaffolding wizard",
		Long: `Walk through a create-my-app style wizard. Nothing is written to
disk; the command exists to show every interactive widget in sequence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context())
		},
	}
}

func runCreate(ctx context.Context) error {
	settings := loadSettings()
	s, err := prompt.NewSession(ctx, prompt.SessionConfig{
		Theme:    sessionTheme(settings),
		Settings: settings,
	})
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	_ = s.Intro("create-my-app")

	path, err := prompt.Text(s, prompt.TextConfig{
		Message:     "Where should we create your project?",
		Placeholder: "./sparkling-solid",
		Validate: func(v string) error {
			if v == "" {
				return fmt.Errorf("Please enter a path.")
			}
			if !strings.HasPrefix(v, "./") {
				return fmt.Errorf("Please enter a relative path.")
			}
			return nil
		},
	})
	if err != nil {
		return wizardEnd(s, err)
	}

	_, err = prompt.Password(s, prompt.PasswordConfig{
		Message: "Provide a password",
		Validate: func(v string) error {
			if len(v) < 8 {
				return fmt.Errorf("Password must have at least 8 characters.")
			}
			return nil
		},
	})
	if err != nil {
		return wizardEnd(s, err)
	}

	port, err := prompt.TextInt(s, prompt.TextConfig{
		Message: "Which port should the dev server use?",
		Initial: "3000",
	})
	if err != nil {
		return wizardEnd(s, err)
	}

	kind, err := prompt.Select(s, prompt.SelectConfig[string]{
		Message: "Pick a project type.",
		Options: []prompt.Option[string]{
			{Value: "ts", Label: "TypeScript", Hint: "recommended"},
			{Value: "js", Label: "JavaScript"},
			{Value: "coffee", Label: "CoffeeScript", Hint: "oh no"},
		},
	})
	if err != nil {
		return wizardEnd(s, err)
	}

	tools, err := prompt.MultiSelect(s, prompt.MultiSelectConfig[string]{
		Message: "Select additional tools.",
		Options: []prompt.Option[string]{
			{Value: "eslint", Label: "ESLint", Hint: "recommended"},
			{Value: "prettier", Label: "Prettier"},
			{Value: "gh-action", Label: "GitHub Action"},
		},
	})
	if err != nil {
		return wizardEnd(s, err)
	}

	install, err := prompt.Confirm(s, prompt.ConfirmConfig{
		Message: "Install dependencies?",
	})
	if err != nil {
		return wizardEnd(s, err)
	}

	if install {
		_, err = prompt.Spin(s, prompt.SpinnerConfig{
			Message:     "Installing via npm",
			StopMessage: "Installed via npm",
		}, func(ctx context.Context) (struct{}, error) {
			// Stand-in for the package manager run.
			select {
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
			}
			return struct{}{}, nil
		})
		if err != nil {
			return wizardEnd(s, err)
		}
	}

	next := fmt.Sprintf("cd %s", path)
	if !install {
		next += "\nnpm install"
	}
	next += "\nnpm dev"
	_ = s.Note("Next steps.", next)

	_ = s.Step(fmt.Sprintf("Scaffolding %s for port %d with %s", kind, port, summarize(tools)))
	_ = s.Outro("Problems? https://github.com/parley-go/parley/issues")
	return nil
}

func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "Run the spinner and progress bar showcase",
		Long: `Drive a manual spinner handle and a determinate progress bar, the
way a caller running its own work would.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTasks(cmd.Context())
		},
	}
}

func runTasks(ctx context.Context) error {
	settings := loadSettings()
	s, err := prompt.NewSession(ctx, prompt.SessionConfig{
		Theme:    sessionTheme(settings),
		Settings: settings,
	})
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	_ = s.Intro("background tasks")

	sp := prompt.NewSpinner(s, prompt.SpinnerConfig{Message: "Resolving packages"})
	sp.Start("")
	if !wait(s, 1500*time.Millisecond) {
		_ = sp.Cancel("")
		_ = s.OutroCancel("Nothing resolved.")
		return nil
	}
	_ = sp.Stop("Resolved 128 packages")

	pb := prompt.NewProgress(s, prompt.ProgressConfig{Message: "Downloading", Total: 40})
	for i := 0; i < 40; i++ {
		if !wait(s, 40*time.Millisecond) {
			_ = pb.Cancel("")
			_ = s.OutroCancel("Download interrupted.")
			return nil
		}
		_ = pb.Advance(1)
	}
	_ = pb.Stop("Downloaded")

	_ = s.Outro("All tasks finished")
	return nil
}

// wait sleeps for d unless the session is cancelled first.
func wait(s *prompt.Session, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-s.Context().Done():
		return false
	}
}

// wizardEnd renders the cancel outro for an abandoned wizard and keeps
// real errors.
func wizardEnd(s *prompt.Session, err error) error {
	if prompt.IsCancel(err) {
		_ = s.OutroCancel("Scaffolding cancelled.")
		return nil
	}
	return err
}

func summarize(tools []string) string {
	if len(tools) == 0 {
		return "no extra tools"
	}
	return strings.Join(tools, ", ")
}

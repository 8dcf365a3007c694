// Package cli assembles the parley-demo command tree. The demo binary
// exists to exercise the prompt engine end to end on a real terminal;
// the engine itself lives under pkg/ and has no cobra dependency.
package cli

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/parley-go/parley/internal/version"
	"github.com/parley-go/parley/pkg/config"
	"github.com/parley-go/parley/pkg/logging"
	"github.com/parley-go/parley/pkg/theme"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "parley-demo",
		Short: "Interactive prompt engine showcase",
		Long: `parley-demo walks through the prompt widgets the parley engine
provides: text input with validation, confirmations, single and multiple
choice lists, masked input, spinners and progress bars.

It needs an interactive terminal on stdin and stdout.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			logger := logging.GetLogger("cli")
			logger.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newTasksCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadSettings resolves the layered settings, falling back to the
// built-in defaults when the user file is broken.
func loadSettings() *config.Settings {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring broken configuration: %v\n", err)
		return config.Default()
	}
	return settings
}

// sessionTheme resolves the theme for this process's terminal.
func sessionTheme(settings *config.Settings) *theme.Theme {
	return settings.Theme.ResolveTheme(theme.Detect(os.Stdout))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("parley-demo version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings",
		Long: `Print the settings the engine would run with, after layering the
built-in defaults, the user file under the XDG config home and any
PARLEY_ environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			out, err := toml.Marshal(map[string]any{
				"theme": map[string]any{
					"name":    settings.Theme.Name,
					"color":   settings.Theme.Color,
					"unicode": settings.Theme.Unicode,
				},
				"spinner": map[string]any{
					"interval": settings.Spinner.Interval.String(),
				},
				"note": map[string]any{
					"markdown": settings.Note.Markdown,
				},
			})
			if err != nil {
				return err
			}

			cmd.Print(string(out))
			return nil
		},
	}
}

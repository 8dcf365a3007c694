package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// base is the package logger. It starts disabled: parley is a library,
// and a prompt session owns the terminal while it runs, so diagnostics
// are opt-in via Enable or SetupLogger.
var base = zerolog.Nop()

// Enable routes diagnostics to w at the level implied by verbosity
// (0 warn, 1 info, 2 debug, 3+ trace).
func Enable(w io.Writer, verbosity int) {
	base = zerolog.New(w).Level(levelFor(verbosity)).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		base = base.With().Caller().Logger()
	}
}

// Disable returns the package to its silent default.
func Disable() {
	base = zerolog.Nop()
}

// SetupLogger configures logging for a binary based on verbosity level.
// Output goes to a log file only, never to the terminal a session may
// be rendering to.
func SetupLogger(verbosity int) {
	logFile := getLogFilePath()
	logFileHandle, err := setupLogFile(logFile)
	if err != nil {
		// Stay silent rather than write to the session's terminal.
		Disable()
		return
	}

	Enable(logFileHandle, verbosity)

	// Log the logging level
	base.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

// WithFields returns a logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	logger := base
	for k, v := range fields {
		logger = logger.With().Interface(k, v).Logger()
	}
	return logger
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// getLogFilePath returns the path to the log file
// It respects XDG_STATE_HOME if set, otherwise uses ~/.local/state/parley/
func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory if we can't get home
			return "parley.log"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "parley", "parley.log")
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	// Create parent directories
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

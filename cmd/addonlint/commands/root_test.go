package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fanexid/addonlint/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(context.Background(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(context.Background(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"ADDONLINT_DEBUG=1", "1", slog.LevelDebug},
		{"ADDONLINT_DEBUG=true", "true", slog.LevelDebug},
		{"ADDONLINT_DEBUG=2", "2", logging.LevelTrace},
		{"ADDONLINT_DEBUG=0", "0", slog.LevelWarn},
		{"ADDONLINT_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("ADDONLINT_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(context.Background(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}

			if tt.wantLevel == slog.LevelDebug {
				if logger.Enabled(context.Background(), logging.LevelTrace) {
					t.Error("expected Trace level to be disabled when ADDONLINT_DEBUG=1")
				}
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	t.Setenv("ADDONLINT_DEBUG", "2")
	verbosity = 1

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected Info level to be enabled")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected Debug level to be disabled (flag should override env var)")
	}
}

func TestSetupLogging_Quiet(t *testing.T) {
	origQuiet := quiet
	origVerbosity := verbosity
	defer func() {
		quiet = origQuiet
		verbosity = origVerbosity
	}()

	quiet = true
	verbosity = 0

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("expected Warn level to be disabled in quiet mode")
	}
}

func TestSetupLogging_QuietVerboseConflict(t *testing.T) {
	origQuiet := quiet
	origVerbosity := verbosity
	defer func() {
		quiet = origQuiet
		verbosity = origVerbosity
	}()

	quiet = true
	verbosity = 1

	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected error when combining --quiet and --verbose")
	}
}

func TestSetupLogging_LogFileCreatesDirectory(t *testing.T) {
	origLogFile := logFile
	origVerbosity := verbosity
	origQuiet := quiet
	defer func() {
		logFile = origLogFile
		verbosity = origVerbosity
		quiet = origQuiet
	}()
	verbosity = 0
	quiet = false

	logFile = filepath.Join(t.TempDir(), "logs", "nested", "addonlint.log")
	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}

	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("expected log file to be created with its directory: %v", err)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	if rootCmd.Use != "addonlint" {
		t.Errorf("Use = %q, want %q", rootCmd.Use, "addonlint")
	}
	if rootCmd.Version != version {
		t.Errorf("Version = %q, want %q", rootCmd.Version, version)
	}
	if !rootCmd.SilenceErrors || !rootCmd.SilenceUsage {
		t.Error("expected SilenceErrors and SilenceUsage to be set")
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	want := []string{"validate", "schema"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %q subcommand to be registered", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	resetFlags(t)
	chdir(t, t.TempDir())

	output, err := runRoot(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "addonlint version "+version) {
		t.Errorf("expected version string in output, got:\n%s", output)
	}
}

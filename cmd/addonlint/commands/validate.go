package commands

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fanexid/addonlint/internal/errors"
	"github.com/fanexid/addonlint/internal/logging"
	"github.com/fanexid/addonlint/internal/manifest"
	"github.com/fanexid/addonlint/internal/validator"
	"github.com/fanexid/addonlint/internal/watch"
)

var (
	validateCoreVersion string
	validateFormat      string
	validateStrict      bool
	validateWatch       bool
)

func init() {
	validateCmd.Flags().StringVar(&validateCoreVersion, "core-version", "",
		"core version to check min_core_version declarations against (default from config)")
	validateCmd.Flags().StringVar(&validateFormat, "format", "",
		"report format: text, json, github (default from config)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false,
		"treat warnings as errors")
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false,
		"re-run validation when manifest files change")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate all addon manifests under a directory",
	Long: `Validate all addon manifests under the given directory (default ".").

When an addons.json index exists at the root it is authoritative: every
listed addon must have a directory with a manifest. Otherwise the tree is
walked and every manifest file found is validated.

Checks run in order per manifest: syntax, schema, domain validity and
uniqueness, implementation file existence, and core version compatibility.
All problems across all manifests are reported in one pass.

Exit codes:
  0 - No errors found (warnings are allowed unless --strict)
  1 - One or more validation errors
  2 - The target directory could not be accessed`,
	Example: `  # Validate the current directory with the configured core version
  addonlint validate

  # Validate against an explicit core version
  addonlint validate ./addons --core-version 1.4.0

  # Machine-readable output
  addonlint validate --format json

  # Annotations for GitHub Actions runs
  addonlint validate --format github

  # Re-validate on every change while editing
  addonlint validate --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}

	coreVersion := cfg.CoreVersion
	if validateCoreVersion != "" {
		coreVersion = validateCoreVersion
	}
	format := cfg.Format
	if validateFormat != "" {
		format = validateFormat
	}
	strict := validateStrict || cfg.Strict

	logger := logging.FromContext(cmd.Context())

	runner, err := validator.NewRunner(coreVersion, validator.WithLogger(logger))
	if err != nil {
		return errors.NewUserError(err, "Pass a core version in major.minor.patch form")
	}

	logger.Info("validating", "target", target, "core_version", runner.CoreVersion())

	reporter := validator.NewReporter(cmd.OutOrStdout(), validator.Format(format))

	if validateWatch {
		return watchLoop(cmd, logger, runner, reporter, target, strict)
	}

	result, err := validateOnce(runner, reporter, target)
	if err != nil {
		return err
	}
	return exitStatus(result, strict)
}

// validateOnce performs a single full validation pass over target.
func validateOnce(runner *validator.Runner, reporter *validator.Reporter, target string) (*validator.Result, error) {
	set, err := manifest.Discover(target)
	if err != nil {
		return nil, errors.NewSystemError(err, "Check that the target directory exists and is readable")
	}

	result := runner.Run(set)
	if err := reporter.Report(result); err != nil {
		return nil, errors.NewSystemError(err, "")
	}
	return result, nil
}

// exitStatus maps a result to the command's error return.
// Warnings never fail the run unless strict mode is on.
func exitStatus(result *validator.Result, strict bool) error {
	if result.HasErrors() {
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}
	if strict && result.HasWarnings() {
		return errors.NewUserError(errors.ErrValidationFailed, "Warnings are errors in strict mode")
	}
	return nil
}

// watchLoop validates once, then re-validates after every change until
// interrupted. The exit status reflects the last completed pass.
func watchLoop(cmd *cobra.Command, logger *slog.Logger, runner *validator.Runner, reporter *validator.Reporter, target string, strict bool) error {
	result, err := validateOnce(runner, reporter, target)
	if err != nil {
		return err
	}

	w, err := watch.New(target, watch.WithLogger(logger))
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for changes", "target", target)

	runErr := w.Run(ctx, func() {
		r, err := validateOnce(runner, reporter, target)
		if err != nil {
			logger.Error("validation pass failed", "error", err)
			return
		}
		result = r
	})
	if runErr != nil {
		return errors.NewSystemError(runErr, "")
	}

	return exitStatus(result, strict)
}

// Package errors provides error handling conventions for the addonlint CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. It re-exports the cockroachdb/errors
// constructors so the rest of the codebase imports a single errors package.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (validation failures, invalid input, configuration)
//   - ExitSystem (2): System-related error (I/O, permissions)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion:
//
//	err := linterrors.NewUserError(linterrors.ErrValidationFailed, "Fix the reported manifests")
//	var exitErr *linterrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors

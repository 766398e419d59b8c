package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidCoreVersion indicates core_version is not a semantic version.
	ErrInvalidCoreVersion = errors.New("core_version must be a semantic version")

	// ErrInvalidFormat indicates an unrecognized report format.
	ErrInvalidFormat = errors.New("invalid format")
)

// validFormats are the accepted report format names.
var validFormats = map[string]bool{
	"text":   true,
	"json":   true,
	"github": true,
}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.CoreVersion != "" {
		if _, err := semver.StrictNewVersion(cfg.CoreVersion); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidCoreVersion, cfg.CoreVersion))
		}
	}

	if cfg.Format != "" && !validFormats[cfg.Format] {
		errs = append(errs, fmt.Errorf("%w: %q (valid: text, json, github)", ErrInvalidFormat, cfg.Format))
	}

	return errs
}

package validator

import (
	"log/slog"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/fanexid/addonlint/internal/errors"
	"github.com/fanexid/addonlint/internal/manifest"
	"github.com/fanexid/addonlint/internal/schema"
)

// domainRegex validates addon domains: lowercase alphanumeric segments
// joined by single dots or hyphens, no leading/trailing separator.
var domainRegex = regexp.MustCompile(`^[a-z0-9]+([.-][a-z0-9]+)*$`)

// Runner executes the ordered checks over a discovered manifest set.
type Runner struct {
	core   *semver.Version
	schema *schema.Validator
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for per-check debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner checking compatibility against coreVersion.
func NewRunner(coreVersion string, opts ...Option) (*Runner, error) {
	core, err := semver.StrictNewVersion(coreVersion)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidVersion, "core version %q: %v", coreVersion, err)
	}

	sv, err := schema.New()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		core:   core,
		schema: sv,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// CoreVersion returns the core version the runner checks against.
func (r *Runner) CoreVersion() string {
	return r.core.String()
}

// Run validates every manifest in the set and returns the aggregated result.
// A failed check never aborts the run; each manifest contributes all the
// diagnostics it can.
func (r *Runner) Run(set *manifest.Set) *Result {
	result := &Result{}

	for _, p := range set.Problems {
		result.AddError(p.Path, "", p.Message, nil)
	}

	// Run-scoped registry of seen domains: domain value -> first file.
	seen := make(map[string]string)

	for i := range set.Files {
		f := &set.Files[i]
		result.FilesChecked++
		r.logger.Debug("validating manifest", "path", f.Path)

		// Syntax comes first; an unparsed document has no fields to check.
		if f.ParseErr != nil {
			result.AddError(f.Path, "", f.ParseErr.Error(), nil)
			continue
		}

		r.checkSchema(f, result)
		r.checkDomain(f, seen, result)
		r.checkFiles(f, result)
		r.checkVersion(f, result)
	}

	return result
}

package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/fanexid/addonlint/internal/manifest"
)

// checkSchema validates the document against the declarative manifest schema.
func (r *Runner) checkSchema(f *manifest.File, result *Result) {
	violations, err := r.schema.Validate(f.Doc)
	if err != nil {
		result.AddError(f.Path, "", err.Error(), nil)
		return
	}

	for _, v := range violations {
		result.AddError(f.Path, v.Field, v.Message, nil)
	}
}

// checkDomain validates the domain identifier pattern and enforces uniqueness
// across the run. The first file to declare a domain owns it; later
// declarations are reported against both files.
func (r *Runner) checkDomain(f *manifest.File, seen map[string]string, result *Result) {
	domain := f.Manifest.Domain
	if domain == "" {
		// Absence already reported by the schema check.
		return
	}

	if !domainRegex.MatchString(domain) {
		msg := "domain must be lowercase alphanumeric segments joined by single dots or hyphens"
		if strings.ToLower(domain) != domain {
			msg = "domain must be lowercase"
		}
		result.AddError(f.Path, "domain", msg, domain)
		return
	}

	if first, dup := seen[domain]; dup {
		result.AddErrorContext(f.Path, "domain",
			fmt.Sprintf("duplicate domain %q", domain), domain,
			map[string]string{"first_declared_in": first})
		return
	}
	seen[domain] = f.Path
}

// checkFiles confirms each declared implementation file exists relative to
// the manifest's directory.
func (r *Runner) checkFiles(f *manifest.File, result *Result) {
	for i, impl := range f.Manifest.Implementations {
		if impl.File == "" {
			// Already reported by the schema check.
			continue
		}
		field := fmt.Sprintf("implementations[%d].file", i)

		if filepath.IsAbs(impl.File) || escapesDir(impl.File) {
			result.AddError(f.Path, field, "implementation path must stay within the addon directory", impl.File)
			continue
		}

		full := filepath.Join(f.Dir, filepath.FromSlash(impl.File))
		if info, err := os.Stat(full); err != nil || info.IsDir() {
			result.AddError(f.Path, field,
				fmt.Sprintf("implementation file %q not found", impl.File), nil)
		}
	}
}

// escapesDir reports whether a relative path climbs out of its base directory.
func escapesDir(path string) bool {
	clean := filepath.Clean(filepath.FromSlash(path))
	return clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}

// checkVersion validates the manifest's own version and compares the declared
// min_core_version against the runner's core version. Absence of
// min_core_version is a warning, not an error: compatibility is unknown.
func (r *Runner) checkVersion(f *manifest.File, result *Result) {
	m := f.Manifest

	if m.Version != "" {
		if _, err := semver.StrictNewVersion(m.Version); err != nil {
			result.AddError(f.Path, "version", "not a valid semantic version", m.Version)
		}
	}

	if m.MinCoreVersion == "" {
		result.AddWarning(f.Path, "min_core_version",
			"not declared; compatibility with the core is unknown", nil)
		return
	}

	min, err := semver.StrictNewVersion(m.MinCoreVersion)
	if err != nil {
		result.AddError(f.Path, "min_core_version", "not a valid semantic version", m.MinCoreVersion)
		return
	}

	if r.core.LessThan(min) {
		result.AddError(f.Path, "min_core_version",
			fmt.Sprintf("requires core >= %s, but current core is %s", min, r.core), nil)
	}
}

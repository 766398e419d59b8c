// Package validator executes the manifest validation pass for addonlint.
//
// A [Runner] takes a discovered manifest set and runs an ordered sequence
// of checks over each file, accumulating diagnostics instead of halting at
// the first failure:
//
//  1. Syntax: a manifest that failed to parse contributes one error and is
//     skipped by the remaining checks.
//  2. Schema: the document is validated against the declarative manifest
//     schema (required fields, types, non-empty values).
//  3. Domain: the domain identifier must match the allowed pattern and be
//     unique across the whole run.
//  4. Files: every declared implementation file must exist relative to the
//     manifest's directory.
//  5. Version: the manifest version must parse as a semantic version, and a
//     declared min_core_version must not exceed the host core version.
//     A missing min_core_version is a warning, never an error.
//
// Results are aggregated in a [Result] passed through each check; there is
// no shared mutable state between runs. A [Reporter] renders results as
// colorized text, JSON, or GitHub Actions annotations.
package validator

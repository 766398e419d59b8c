// Package paths centralizes filesystem location logic for addonlint.
//
// It resolves the user configuration directory via the XDG Base Directory
// Specification and provides small helpers for directory creation.
package paths

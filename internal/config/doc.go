// Package config provides configuration management for the addonlint CLI.
//
// Configuration is loaded via Viper from (in order of precedence) an explicit
// --config path, ./config.yaml, and the addonlint directory under the XDG
// config home. Environment variables with the ADDONLINT prefix override file
// values (e.g. ADDONLINT_CORE_VERSION).
//
// The core_version field supplies the host core version that manifests'
// min_core_version declarations are checked against; it must itself parse
// as a semantic version.
package config

// Package config provides configuration management for addonlint using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/fanexid/addonlint/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "addonlint"

// Config represents the top-level configuration structure.
type Config struct {
	// CoreVersion is the host core version manifests are checked against.
	CoreVersion string `mapstructure:"core_version" yaml:"core_version"`

	// Format selects the default report format: text, json, or github.
	Format string `mapstructure:"format" yaml:"format"`

	// Strict treats warnings as errors when true.
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// DefaultCoreVersion is used when no core version is configured.
const DefaultCoreVersion = "0.1.0"

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.AppConfigDir(AppName))

	// Environment variable support
	viper.SetEnvPrefix("ADDONLINT")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("core_version", DefaultCoreVersion)
	viper.SetDefault("format", "text")
	viper.SetDefault("strict", false)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("validating config: %w", errs[0])
	}

	return &cfg, nil
}

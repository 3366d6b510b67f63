// Package config loads and validates sharpfang configuration from file,
// environment, and defaults.
package config

import "errors"

// Config is the top-level configuration struct for sharpfang.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Engine EngineConfig `mapstructure:"engine" yaml:"engine"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// EngineConfig holds the external analysis engine settings.
type EngineConfig struct {
	Command      string   `mapstructure:"command" yaml:"command"`
	Args         []string `mapstructure:"args" yaml:"args,omitempty"`
	SettingsFile string   `mapstructure:"settings_file" yaml:"settings_file,omitempty"`
	Flags        []string `mapstructure:"flags" yaml:"flags,omitempty"`
}

// OutputConfig holds violation output settings.
type OutputConfig struct {
	Format        string `mapstructure:"format" yaml:"format"`
	MaxViolations int    `mapstructure:"max_violations" yaml:"max_violations"`
	NoColor       bool   `mapstructure:"no_color" yaml:"no_color"`
}

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default configuration values.
const (
	DefaultEngineCommand       = "stylecop-engine"
	DefaultOutputFormat        = FormatText
	DefaultOutputMaxViolations = 0
	DefaultOutputNoColor       = false
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidFormat indicates an unknown output format name.
	ErrInvalidFormat = errors.New("output format must be one of: text, json")
	// ErrInvalidMaxViolations indicates a negative max_violations value.
	ErrInvalidMaxViolations = errors.New("output max_violations must be >= 0")
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		return ErrInvalidFormat
	}

	if c.Output.MaxViolations < 0 {
		return ErrInvalidMaxViolations
	}

	return nil
}

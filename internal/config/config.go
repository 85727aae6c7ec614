// Package config loads gobeam settings from gobeam.{yaml,json,toml} and GOBEAM_* variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// EnvPrefix is the prefix of environment overrides, e.g. GOBEAM_OUTPUT_PRECISION.
const EnvPrefix = "GOBEAM"

// Config represents the complete gobeam configuration
type Config struct {
	Material MaterialConfig `json:"material" mapstructure:"material"`
	Output   OutputConfig   `json:"output" mapstructure:"output"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// MaterialConfig holds the defaults applied to beams that do not set a material
type MaterialConfig struct {
	E     float64 `json:"e" mapstructure:"e"`
	Alpha float64 `json:"alpha" mapstructure:"alpha"`
	I     float64 `json:"i" mapstructure:"i"`
	Area  float64 `json:"area" mapstructure:"area"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Precision int    `json:"precision" mapstructure:"precision"`
	Format    string `json:"format" mapstructure:"format"` // text or json
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"` // human or json
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	m := beam.DefaultMaterial()
	return &Config{
		Material: MaterialConfig{E: m.E, Alpha: m.Alpha, I: m.I, Area: m.Area},
		Output: OutputConfig{
			Precision: 3,
			Format:    "text",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "human",
		},
	}
}

// BeamMaterial converts the material section for beam.WithMaterial.
func (c *Config) BeamMaterial() beam.Material {
	return beam.Material{E: c.Material.E, Alpha: c.Material.Alpha, I: c.Material.I, Area: c.Material.Area}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("material.e", d.Material.E)
	v.SetDefault("material.alpha", d.Material.Alpha)
	v.SetDefault("material.i", d.Material.I)
	v.SetDefault("material.area", d.Material.Area)
	v.SetDefault("output.precision", d.Output.Precision)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Load reads the configuration. path may name a config file or a directory
// holding gobeam.{yaml,json,toml}; when empty, the working directory and
// $HOME/.gobeam are searched. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if info, err := os.Stat(path); path != "" && err == nil && !info.IsDir() {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gobeam")
		if path != "" {
			v.AddConfigPath(path)
		} else {
			v.AddConfigPath(".")
			if home, err := os.UserHomeDir(); err == nil {
				v.AddConfigPath(filepath.Join(home, ".gobeam"))
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Material.E <= 0 {
		return &ConfigError{Field: "material.e", Message: "must be positive"}
	}
	if c.Material.I <= 0 {
		return &ConfigError{Field: "material.i", Message: "must be positive"}
	}
	if c.Material.Area <= 0 {
		return &ConfigError{Field: "material.area", Message: "must be positive"}
	}
	if c.Output.Precision < 0 || c.Output.Precision > 12 {
		return &ConfigError{Field: "output.precision", Message: "must be between 0 and 12"}
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return &ConfigError{Field: "output.format", Message: "must be text or json"}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "unknown level " + c.Logging.Level}
	}
	switch c.Logging.Format {
	case "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be human or json"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// Package config provides configuration management.
//
// Values are layered: built-in defaults, then a YAML file, then a .env file,
// then NUTRICALC_* environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"nutricalc/internal/errors"
	"nutricalc/internal/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "NUTRICALC_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `yaml:"version"`

	// Calculation contains calorie calculation defaults
	Calculation CalculationConfig `yaml:"calculation" envPrefix:"CALC_"`

	// Units contains unit conversion settings
	Units UnitsConfig `yaml:"units" envPrefix:"UNITS_"`

	// Output contains output configuration
	Output OutputConfig `yaml:"output" envPrefix:"OUTPUT_"`

	// Logging contains logging configuration
	Logging logging.Config `yaml:"logging" envPrefix:"LOG_"`
}

// CalculationConfig contains calorie calculation defaults
type CalculationConfig struct {
	// DefaultFormula is the BMR formula used when none is given
	DefaultFormula string `yaml:"default_formula" env:"DEFAULT_FORMULA"`

	// DefaultActivity is the activity level used when none is given
	DefaultActivity string `yaml:"default_activity" env:"DEFAULT_ACTIVITY"`

	// SeniorAdjustments applies the senior policy to calorie results
	SeniorAdjustments bool `yaml:"senior_adjustments" env:"SENIOR_ADJUSTMENTS"`

	// PolicyPath is an HCL senior policy file; empty means the built-in table
	PolicyPath string `yaml:"policy_path" env:"POLICY_PATH"`
}

// UnitsConfig contains unit conversion settings
type UnitsConfig struct {
	// Strict rejects unknown units and cross-category conversions
	Strict bool `yaml:"strict" env:"STRICT"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format (cli, json)
	Format string `yaml:"format" env:"FORMAT"`

	// Precision is the number of decimal places shown
	Precision int32 `yaml:"precision" env:"PRECISION"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Calculation: CalculationConfig{
			DefaultFormula:    "mifflinStJeor",
			DefaultActivity:   "sedentary",
			SeniorAdjustments: false,
		},
		Units: UnitsConfig{
			Strict: false,
		},
		Output: OutputConfig{
			Format:    "cli",
			Precision: 2,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.nutricalc.yaml
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".nutricalc.yaml"
	}
	return filepath.Join(homeDir, ".nutricalc.yaml")
}

// Load loads configuration from a YAML file and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Config("failed to parse "+path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Config("failed to read "+path, err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Config("failed to load "+path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Config("invalid environment override", err)
	}
	return nil
}

// Validate checks the values that the CLI cannot recover from
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "cli", "json":
	default:
		return errors.Config("unsupported output format: "+c.Output.Format, nil)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 10 {
		return errors.Config("output precision must be between 0 and 10", nil)
	}
	return nil
}

// Save saves configuration to a YAML file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("failed to create config directory", err).WithContext("path", dir)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Config("failed to encode config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Config("failed to write config file", err).WithContext("path", path)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

package config

import (
	"fmt"

	"jellyamp/internal/geometry"
	"jellyamp/internal/infrastructure/errors"
	"jellyamp/internal/infrastructure/logging"
)

const opValidate = "validate_config"

// Environments
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvTest        = "test"
)

// WindowConfig holds the main window settings
type WindowConfig struct {
	Title          string   `mapstructure:"title" json:"title" toml:"title"`
	Width          float64  `mapstructure:"width" json:"width" toml:"width"`                                // preferred width on first run
	Height         float64  `mapstructure:"height" json:"height" toml:"height"`                             // preferred height on first run
	MinWidth       *float64 `mapstructure:"min_width" json:"minWidth,omitempty" toml:"min_width,omitempty"` // nil uses geometry.FallbackMinWidth
	MinHeight      *float64 `mapstructure:"min_height" json:"minHeight,omitempty" toml:"min_height,omitempty"`
	AdaptiveSizing bool     `mapstructure:"adaptive_sizing" json:"adaptiveSizing" toml:"adaptive_sizing"` // size the first window from the display
	Frameless      bool     `mapstructure:"frameless" json:"frameless" toml:"frameless"`
}

// LoggingConfig holds the logger settings
type LoggingConfig struct {
	Level string `mapstructure:"level" json:"level" toml:"level"` // debug, info, warn or error
}

// Config holds all application configuration. It is read once at startup
// and never mutated afterwards.
type Config struct {
	Environment string        `mapstructure:"environment" json:"environment" toml:"environment"`
	Window      WindowConfig  `mapstructure:"window" json:"window" toml:"window"`
	Logging     LoggingConfig `mapstructure:"logging" json:"logging" toml:"logging"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Environment: EnvProduction,
		Window: WindowConfig{
			Title:          "Jellyamp",
			Width:          1000,
			Height:         700,
			AdaptiveSizing: true,
			Frameless:      false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DevelopmentConfig returns a configuration optimized for development
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.Environment = EnvDevelopment
	config.Window.Title = "Jellyamp (dev)"
	config.Logging.Level = "debug"
	return config
}

// TestConfig returns a configuration optimized for testing
func TestConfig() *Config {
	config := DefaultConfig()
	config.Environment = EnvTest
	config.Logging.Level = "error"
	return config
}

// ConfigForEnvironment returns the preset for the given environment,
// falling back to production for unknown names
func ConfigForEnvironment(env string) *Config {
	switch env {
	case EnvDevelopment:
		return DevelopmentConfig()
	case EnvTest:
		return TestConfig()
	default:
		return DefaultConfig()
	}
}

// Validate validates the configuration parameters. Errors carry the
// INVALID_CONFIG code and name the offending field.
func (c *Config) Validate() error {
	validEnvironments := map[string]bool{
		EnvDevelopment: true,
		EnvTest:        true,
		EnvProduction:  true,
	}
	if !validEnvironments[c.Environment] {
		return errors.HandleInvalidConfig(opValidate, "environment",
			fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return errors.HandleInvalidConfig(opValidate, "logging.level",
			fmt.Errorf("invalid logging.level: %w", err))
	}

	if c.Window.Title == "" {
		return errors.HandleInvalidConfig(opValidate, "window.title",
			fmt.Errorf("window.title cannot be empty"))
	}

	if err := c.WindowSpec().Validate(); err != nil {
		return errors.HandleInvalidConfig(opValidate, "window",
			fmt.Errorf("invalid window size: %w", err))
	}

	return nil
}

// WindowSpec returns the window configuration in the form the geometry
// initializer consumes
func (c *Config) WindowSpec() geometry.ConfiguredWindowSpec {
	spec := geometry.ConfiguredWindowSpec{
		DefaultWidth:  c.Window.Width,
		DefaultHeight: c.Window.Height,
	}
	if c.Window.MinWidth != nil {
		spec.MinWidth = geometry.Float(*c.Window.MinWidth)
	}
	if c.Window.MinHeight != nil {
		spec.MinHeight = geometry.Float(*c.Window.MinHeight)
	}
	return spec
}

// MinSize returns the minimum window size in whole pixels, for the window
// options handed to the webview runtime
func (c *Config) MinSize() (width, height int) {
	w, h := c.WindowSpec().ResolvedMinimum()
	return int(w), int(h)
}

// LogLevel returns the parsed log level, info if it does not parse
func (c *Config) LogLevel() logging.Level {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	if c.Window.MinWidth != nil {
		clone.Window.MinWidth = geometry.Float(*c.Window.MinWidth)
	}
	if c.Window.MinHeight != nil {
		clone.Window.MinHeight = geometry.Float(*c.Window.MinHeight)
	}
	return &clone
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName names the per-user config directory
	AppName = "jellyamp"
	// EnvPrefix is prepended to every environment variable, e.g. JELLYAMP_WINDOW_WIDTH
	EnvPrefix = "JELLYAMP"
)

// Loader reads the configuration from defaults, an optional config.toml and
// the environment, in increasing order of precedence.
type Loader struct {
	viper *viper.Viper
}

// NewLoader creates a loader searching the given directories for
// config.toml. With no directories it searches the user config directory
// and the working directory.
func NewLoader(configPaths ...string) (*Loader, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	if len(configPaths) == 0 {
		if dir, err := GetConfigDir(); err == nil {
			configPaths = append(configPaths, dir)
		}
		configPaths = append(configPaths, ".")
	}
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without a default are invisible to Unmarshal unless bound
	for _, key := range []string{"window.min_width", "window.min_height"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	if err := v.BindEnv("environment", EnvPrefix+"_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_ENV: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", EnvPrefix, err)
	}

	return &Loader{viper: v}, nil
}

// Load reads and validates the configuration
func (l *Loader) Load() (*Config, error) {
	l.setDefaults(DefaultConfig())

	if err := l.readConfigFile(); err != nil {
		return nil, err
	}

	// The environment may come from the file or the environment, and it
	// picks the preset the remaining defaults come from
	env := normalizeEnvironment(l.viper.GetString("environment"))
	l.setDefaults(ConfigForEnvironment(env))

	config := &Config{}
	if err := l.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	config.Environment = normalizeEnvironment(config.Environment)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ConfigFileUsed returns the path of the config file read by Load, if any
func (l *Loader) ConfigFileUsed() string {
	return l.viper.ConfigFileUsed()
}

func (l *Loader) readConfigFile() error {
	if err := l.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", l.viper.ConfigFileUsed(), err)
	}
	return nil
}

func (l *Loader) setDefaults(defaults *Config) {
	l.viper.SetDefault("environment", defaults.Environment)

	l.viper.SetDefault("window.title", defaults.Window.Title)
	l.viper.SetDefault("window.width", defaults.Window.Width)
	l.viper.SetDefault("window.height", defaults.Window.Height)
	l.viper.SetDefault("window.adaptive_sizing", defaults.Window.AdaptiveSizing)
	l.viper.SetDefault("window.frameless", defaults.Window.Frameless)

	l.viper.SetDefault("logging.level", defaults.Logging.Level)
}

func normalizeEnvironment(env string) string {
	return strings.ToLower(strings.TrimSpace(env))
}

// GetConfigDir returns the per-user configuration directory
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// Load reads the configuration from the default locations
func Load() (*Config, error) {
	loader, err := NewLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

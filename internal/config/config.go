package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Backend   BackendConfig
	UI        UIConfig
	Generator GeneratorConfig
}

// BackendConfig holds the analysis backend settings.
type BackendConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// UIConfig holds input and presentation settings.
type UIConfig struct {
	DebounceMs int `mapstructure:"debounce_ms"`
}

// GeneratorConfig holds password generation settings.
type GeneratorConfig struct {
	Length       int `mapstructure:"length"`
	Alternatives int `mapstructure:"alternatives"`
}

// Load reads configuration from file and env. Env var overrides use prefix PASSCHECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.timeout_seconds", 10)
	v.SetDefault("ui.debounce_ms", 300)
	v.SetDefault("generator.length", 16)
	v.SetDefault("generator.alternatives", 3)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PASSCHECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "passcheck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PASSCHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Timeout returns the backend request timeout as a duration.
func (c BackendConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Debounce returns the quiet window after the last input change before a
// value is considered settled.
func (c UIConfig) Debounce() time.Duration {
	if c.DebounceMs <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.DebounceMs) * time.Millisecond
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyDefaultPriority = "tasks.default_priority"
	keyDefaultDuration = "sessions.default_duration"
	keyRecentLimit     = "sessions.recent_limit"
	keySessionCmd      = "settings.cmd"
	keyDarkTheme       = "display.dark_theme"
)

const (
	defaultPriority = "Medium"
	defaultDuration = 25
	defaultRecent   = 5
)

// WithViperConfig returns an Option that loads configuration from
// Viper, writing a default config file if none exists yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values already
// collected from the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDefaultPriority, defaultPriority)
	v.SetDefault(keyDefaultDuration, defaultDuration)
	v.SetDefault(keyRecentLimit, defaultRecent)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)

	if c.Sessions.DefaultDuration != 0 {
		v.Set(keyDefaultDuration, c.Sessions.DefaultDuration)
	}

	if c.Tasks.DefaultPriority != "" {
		v.Set(keyDefaultPriority, c.Tasks.DefaultPriority)
	}
}

// loadViperConfig loads configuration from Viper into the Config
// struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c)
}

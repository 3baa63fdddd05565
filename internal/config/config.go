// Package config loads and persists application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings
	Config struct {
		Tasks    TasksConfig
		Sessions SessionsConfig
		Settings SettingsConfig
		Display  DisplayConfig
	}

	// TasksConfig holds task-related settings
	TasksConfig struct {
		DefaultPriority string `mapstructure:"default_priority"`
	}

	// SessionsConfig holds study-session settings
	SessionsConfig struct {
		DefaultDuration int `mapstructure:"default_duration"`
		RecentLimit     int `mapstructure:"recent_limit"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		// Cmd is an optional command executed after a session is logged
		Cmd string `mapstructure:"cmd"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "studia"
	configFileName = "config.yml"
	dbFileName     = "studia.db"
	logFileName    = "studia.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, database, and log file paths
// under the XDG base directories. STUDIA_ENV switches to separate
// files for development.
func InitializePaths() {
	studiaEnv := strings.TrimSpace(os.Getenv("STUDIA_ENV"))
	if studiaEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", studiaEnv)
		dbFileName = fmt.Sprintf("studia_%s.db", studiaEnv)
		logFileName = fmt.Sprintf("studia_%s.log", studiaEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	return cfg, nil
}

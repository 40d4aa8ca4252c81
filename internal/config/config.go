// Package config loads fasttrack settings from defaults, JSON config files
// and FASTTRACK_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "FASTTRACK_"

// GlobalConfigFileName is looked up inside the default data directory.
const GlobalConfigFileName = "config.json"

// Configuration represents the fasttrack CLI configuration
type Configuration struct {
	DataDir     string `koanf:"data_dir" validate:"required"`
	LogFile     string `koanf:"log_file" validate:"required"`
	LogLevel    string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LockTimeout int    `koanf:"lock_timeout" validate:"min=1,max=300"` // Seconds to wait for another invocation to finish
	Color       bool   `koanf:"color"`
	TimeFormat  string `koanf:"time_format" validate:"required"`
}

// LockWait returns LockTimeout as a duration.
func (c *Configuration) LockWait() time.Duration {
	return time.Duration(c.LockTimeout) * time.Second
}

// GlobalConfigPath returns ~/.fasting_tracker/config.json.
func GlobalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultDataDirName, GlobalConfigFileName), nil
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if globalPath, err := GlobalConfigPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// An explicitly named config file must exist
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", localConfigPath, err)
		}
		if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", localConfigPath, err)
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider(EnvPrefix, ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.DataDir = expandHomePath(cfg.DataDir)
	cfg.LogFile = expandHomePath(cfg.LogFile)

	// NO_COLOR disables colour regardless of config
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}

	return &cfg, nil
}

// Validate checks field constraints declared in struct tags.
func (c *Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: FASTTRACK_LOCK_TIMEOUT -> lock_timeout
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

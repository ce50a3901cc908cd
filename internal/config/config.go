// Package config handles XDG configuration directory and file paths.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "taskdeck"

	// TokenFile is the stored session token filename.
	TokenFile = "token.json"

	// DefaultBaseURL is the backend base address used when neither the
	// --api flag nor TASKDECK_API is set.
	DefaultBaseURL = "http://localhost:4000/api"

	// BaseURLEnv is the environment variable overriding the backend address.
	BaseURLEnv = "TASKDECK_API"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the backend base address.
	BaseURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory
// and backend address. Empty arguments select the defaults.
func New(configDir, baseURL string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	if baseURL == "" {
		baseURL = ResolveBaseURL()
	}
	return &Config{Dir: dir, BaseURL: baseURL}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ResolveBaseURL returns the backend base address from the environment,
// falling back to DefaultBaseURL.
func ResolveBaseURL() string {
	if v := os.Getenv(BaseURLEnv); v != "" {
		return v
	}
	return DefaultBaseURL
}

// TokenPath returns the path to the stored session token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

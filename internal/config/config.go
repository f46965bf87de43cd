// Package config resolves the configuration directory, storage backend and
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// OAuthClientFile is the OAuth client credentials filename used by import.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Storage backends.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Env holds settings read from the environment. Command-line flags win.
type Env struct {
	Dir     string `env:"TASKLIST_DIR"`
	Backend string `env:"TASKLIST_BACKEND" envDefault:"bolt"`
	Debug   bool   `env:"TASKLIST_DEBUG"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration and data directory.
	Dir string

	// Backend selects the storage slot implementation.
	Backend string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config from the environment.
// configDir overrides TASKLIST_DIR; when both are empty the XDG default is used.
func New(configDir string) (*Config, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	dir := configDir
	if dir == "" {
		dir = e.Dir
	}
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir, Debug: e.Debug}
	if err := cfg.SetBackend(e.Backend); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetBackend selects a storage backend by name (case-insensitive).
func (c *Config) SetBackend(name string) error {
	switch b := strings.ToLower(strings.TrimSpace(name)); b {
	case BackendBolt, BackendSQLite:
		c.Backend = b
		return nil
	default:
		return fmt.Errorf("unknown backend: %s", name)
	}
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

// DataPath returns the storage file for the selected backend.
func (c *Config) DataPath() string {
	if c.Backend == BackendSQLite {
		return filepath.Join(c.Dir, "tasks.sqlite")
	}
	return filepath.Join(c.Dir, "tasks.db")
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

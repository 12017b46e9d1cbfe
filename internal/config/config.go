// Package config loads hubsum configuration and resolves the export window.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all hubsum configuration.
type Config struct {
	Hubstaff HubstaffConfig `toml:"hubstaff"`
	Export   ExportConfig   `toml:"export"`
}

// HubstaffConfig holds provider credentials.
type HubstaffConfig struct {
	RefreshToken string `toml:"refresh_token,omitempty"`
	OrgID        string `toml:"org_id,omitempty"`
}

// ExportConfig holds output paths.
type ExportConfig struct {
	Output     string `toml:"output,omitempty"`
	TokenCache string `toml:"token_cache,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Export: ExportConfig{
			Output: "hubstaff_summary_by_client.csv",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hubsum")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hubsum")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// GetRefreshToken returns the refresh token from env var or config, in that order.
func GetRefreshToken(cfg Config) string {
	if v := os.Getenv("HUBSTAFF_REFRESH_TOKEN"); v != "" {
		return v
	}
	return cfg.Hubstaff.RefreshToken
}

// GetOrgID returns the organization id from env var or config, in that order.
func GetOrgID(cfg Config) string {
	if v := os.Getenv("HUBSTAFF_ORG_ID"); v != "" {
		return v
	}
	return cfg.Hubstaff.OrgID
}

// TokenCachePath returns the configured token cache path, or the default
// location under the config directory.
func TokenCachePath(cfg Config) string {
	if cfg.Export.TokenCache != "" {
		return cfg.Export.TokenCache
	}
	return filepath.Join(Dir(), "token.json")
}

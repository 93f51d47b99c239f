// Package config reads and writes the roster configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPageSize is the number of users fetched per page when the
// config does not override it.
const DefaultPageSize = 50

// Config represents the flat roster configuration.
type Config struct {
	DBPath   string `json:"db_path,omitempty"`   // defaults to ~/.roster/roster.db
	SeedFile string `json:"seed_file,omitempty"` // local users.json path
	SeedURL  string `json:"seed_url,omitempty"`  // remote users.json; SeedFile wins when both are set
	PageSize int    `json:"page_size,omitempty"` // page size for incremental loads
}

// Load reads ~/.roster/config.json. A missing file is not an error:
// the zero config with defaults applied is returned.
func Load() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(cfg, dir)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(cfg, dir)
	return cfg, nil
}

// Save writes config.json under ~/.roster.
func Save(cfg *Config) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyDefaults fills unset fields. Loaded configs always carry a
// concrete DBPath so commands never open an unnamed database.
func applyDefaults(cfg *Config, dir string) {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, "roster.db")
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".roster"), nil
}

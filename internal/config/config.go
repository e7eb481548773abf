// Package config loads and saves poshell's on-disk settings: where the
// history file lives, a history size, and which theme to render
// diagnostics with. HistorySize is stored and loaded only; no other
// package reads it, so the history is never trimmed to that size.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Theme       string `yaml:"theme"`
	HistorySize int    `yaml:"history_size"`
	HistoryFile string `yaml:"history_file,omitempty"`
}

func Default() *Config {
	return &Config{
		Theme:       "auto",
		HistorySize: 1000,
	}
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".poshell"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// HistoryPath returns the configured history file, or the default
// location under Dir() if the config doesn't override it.
func (c *Config) HistoryPath() (string, error) {
	if c.HistoryFile != "" {
		return c.HistoryFile, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// Load reads ~/.poshell/config.yaml if present, then applies the
// POSHELL_HISTFILE environment override.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		f, openErr := os.Open(path)
		if openErr == nil {
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		} else if !os.IsNotExist(openErr) {
			return nil, openErr
		}
	}

	if histFile := os.Getenv("POSHELL_HISTFILE"); histFile != "" {
		cfg.HistoryFile = histFile
	}

	return cfg, nil
}

// Save writes cfg to ~/.poshell/config.yaml.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Package config provides global CLI configuration.
//
// This package handles reading and writing ~/.config/mcsrv/config.yaml,
// which holds host-wide defaults. Per-server settings live in each
// server directory's .mcsrvmeta file, not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultRAM is the memory allocation used when neither the command
// line, the server metadata, nor the global config names one.
const DefaultRAM = "4G"

// Config represents the global config.yaml file.
type Config struct {
	// DefaultRAM is the fallback -Xmx token for servers without a
	// stored ram value (e.g. "4G", "512M").
	DefaultRAM string `yaml:"default_ram,omitempty"`

	// Java is the launch binary used to start servers.
	Java string `yaml:"java,omitempty"`
}

// Default returns a config populated with built-in defaults.
func Default() *Config {
	return &Config{
		DefaultRAM: DefaultRAM,
		Java:       "java",
	}
}

// Path returns the location of the global config file.
//
// Returns:
//   - string: ~/.config/mcsrv/config.yaml (falling back to the working
//     directory when the home directory cannot be determined)
func Path() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "mcsrv", "config.yaml")
}

// Load reads the global config from path.
//
// A missing file is not an error: built-in defaults are returned so the
// tool works with zero setup. Fields left empty in the file also fall
// back to their defaults.
//
// Parameters:
//   - path: Path to the config.yaml file
//
// Returns:
//   - *Config: The effective configuration
//   - error: Read or parse errors (other than the file not existing)
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.DefaultRAM == "" {
		cfg.DefaultRAM = DefaultRAM
	}
	if cfg.Java == "" {
		cfg.Java = "java"
	}

	return cfg, nil
}

// Write persists the config to path, creating parent directories.
//
// Parameters:
//   - path: Path to write the config.yaml file
//   - cfg: The configuration to write
//
// Returns:
//   - error: Any error that occurred during writing
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	header := "# mcsrv global configuration\n\n"
	if err := os.WriteFile(path, []byte(header+string(data)), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

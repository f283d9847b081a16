// Package config provides configuration management for flowboard.
//
// Config file locations (priority order):
//  1. $FLOWBOARD_CONFIG
//  2. ./flowboard.yaml
//  3. $XDG_CONFIG_HOME/flowboard/config.yaml
//  4. ~/.config/flowboard/config.yaml
//  5. /etc/flowboard/config.yaml
//
// Missing values fall back to DefaultConfig.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTitle is the page and render title
	DefaultTitle = "flowboard"
	// DefaultMountID is the id of the page element the diagram takes over
	DefaultMountID = "root"
	// DefaultDeleteKeyCode is the key code of the Delete key
	DefaultDeleteKeyCode = 46
)

// EnvConfigPath names an explicit config file
const EnvConfigPath = "FLOWBOARD_CONFIG"

// LocalConfigFile is looked up in the working directory
const LocalConfigFile = "flowboard.yaml"

// SearchPaths lists the candidate config files in priority order. Unset
// environment variables contribute no entry.
func SearchPaths() []string {
	var paths []string
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, LocalConfigFile)
	paths = append(paths, userConfigPaths()...)
	return append(paths, filepath.Join("/etc", "flowboard", "config.yaml"))
}

// userConfigPaths are the per-user locations, XDG first
func userConfigPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "flowboard", "config.yaml"))
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "flowboard", "config.yaml"))
	}
	return paths
}

// FindConfigPath returns the first existing file of SearchPaths, or ""
func FindConfigPath() string {
	for _, p := range SearchPaths() {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	}
	return ""
}

// DefaultConfigPath is where `config init` writes: the first per-user
// location, or the working directory when no home is known
func DefaultConfigPath() string {
	if paths := userConfigPaths(); len(paths) > 0 {
		return paths[0]
	}
	return LocalConfigFile
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = Duration(10 * time.Second)
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = Duration(30 * time.Second)
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = Duration(60 * time.Second)
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = Duration(10 * time.Second)
	}
	if c.Flow.Title == "" {
		c.Flow.Title = DefaultTitle
	}
	if c.Flow.MountID == "" {
		c.Flow.MountID = DefaultMountID
	}
	if c.Flow.DeleteKeyCode == 0 {
		c.Flow.DeleteKeyCode = DefaultDeleteKeyCode
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects values that cannot be served
func (c *Config) Validate() error {
	if _, ok := deleteKeys[c.Flow.DeleteKeyCode]; !ok {
		return fmt.Errorf("flow.delete_key_code %d is not a supported delete key", c.Flow.DeleteKeyCode)
	}
	if c.Seed.Watch && c.Seed.Path == "" {
		return fmt.Errorf("seed.watch requires seed.path")
	}
	return nil
}

// deleteKeys maps the supported key codes to KeyboardEvent key names
var deleteKeys = map[int]string{
	8:  "Backspace",
	27: "Escape",
	46: "Delete",
}

// DeleteKey returns the key name of DeleteKeyCode, or "" when unsupported
func (f FlowConfig) DeleteKey() string {
	return deleteKeys[f.DeleteKeyCode]
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	seed := c.Seed.Path
	if seed == "" {
		seed = "built-in"
	}

	summary := fmt.Sprintf("Listen: %s, Seed: %s (watch: %v)\n", c.Server.Addr, seed, c.Seed.Watch)
	summary += fmt.Sprintf("Mount: #%s, Delete key: %d, Strict endpoints: %v, Cascade remove: %v",
		c.Flow.MountID, c.Flow.DeleteKeyCode, c.Flow.StrictEndpoints, c.Flow.CascadeRemove)
	return summary
}

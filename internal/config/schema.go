package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version int          `yaml:"version"`
	Server  ServerConfig `yaml:"server"`
	Seed    SeedConfig   `yaml:"seed"`
	Flow    FlowConfig   `yaml:"flow"`
	Log     LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	IdleTimeout     Duration `yaml:"idle_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// SeedConfig selects the initial element sequence
type SeedConfig struct {
	Path  string `yaml:"path,omitempty"` // empty = built-in seed
	Watch bool   `yaml:"watch"`          // reseed when the file changes
}

// FlowConfig holds diagram behavior passed to the page and the store
type FlowConfig struct {
	Title           string `yaml:"title"`
	MountID         string `yaml:"mount_id"`
	DeleteKeyCode   int    `yaml:"delete_key_code"`
	StrictEndpoints bool   `yaml:"strict_endpoints"`
	CascadeRemove   bool   `yaml:"cascade_remove"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

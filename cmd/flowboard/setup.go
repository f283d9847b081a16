package main

import (
	"fmt"
	"io"
	"log/slog"

	"flowboard/internal/codec"
	"flowboard/internal/config"
	"flowboard/internal/domain"
	"flowboard/internal/logging"
	"flowboard/internal/service"
)

// loadConfig reads the explicit config file, or searches the standard locations
func loadConfig(opts *globalOptions) (*config.Config, string, error) {
	if opts.configPath != "" {
		return config.LoadFromPath(opts.configPath)
	}
	return config.Load()
}

// newLogger builds the process logger, the flag winning over the file
func newLogger(w io.Writer, opts *globalOptions, cfg *config.Config) (*slog.Logger, error) {
	name := cfg.Log.Level
	if opts.logLevel != "" {
		name = opts.logLevel
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return logging.New(w, level), nil
}

// seedFunc loads the configured seed file, or the built-in seed
func seedFunc(path string) service.SeedFunc {
	if path == "" {
		return func() (domain.Elements, error) {
			return domain.DefaultSeed(), nil
		}
	}
	return func() (domain.Elements, error) {
		return codec.LoadFile(path)
	}
}

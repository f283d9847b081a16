package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"flowboard/internal/codec"
	"flowboard/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flowboard.yaml")
	if _, err := run(t, "config", "init", path); err != nil {
		t.Fatalf("config init: %v", err)
	}
	return path
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "flowboard.yaml")

	out, err := run(t, "config", "init", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("expected path in output, got %q", out)
	}

	cfg, _, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if diff := deep.Equal(cfg, config.DefaultConfig()); diff != nil {
		t.Error(diff)
	}

	if _, err := run(t, "config", "init", path); err == nil {
		t.Error("expected error when file exists")
	}
	if _, err := run(t, "config", "init", "--force", path); err != nil {
		t.Errorf("force overwrite: %v", err)
	}
}

func TestElementsCommand(t *testing.T) {
	cfgPath := writeConfig(t)

	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	seed := `elements:
  - id: a
    type: input
    data: {label: A}
    position: {x: 0, y: 0}
  - id: b
    data: {label: B}
    position: {x: 10, y: 10}
  - id: ea-b
    source: a
    target: b
`
	if err := os.WriteFile(seedPath, []byte(seed), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		args   []string
		format string
		want   []string
	}{
		{name: "built-in json", args: []string{"elements"}, format: "json", want: []string{"1", "2", "e1-2"}},
		{name: "built-in yaml", args: []string{"elements", "-f", "yaml"}, format: "yaml", want: []string{"1", "2", "e1-2"}},
		{name: "seed file", args: []string{"elements", "--seed", seedPath}, format: "json", want: []string{"a", "b", "ea-b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--config", cfgPath}, tt.args...)...)
			if err != nil {
				t.Fatalf("elements: %v", err)
			}

			c, err := codec.ForFormat(tt.format)
			if err != nil {
				t.Fatal(err)
			}
			els, err := c.Parse(strings.NewReader(out))
			if err != nil {
				t.Fatalf("parse output: %v\n%s", err, out)
			}
			if diff := deep.Equal(els.IDs(), tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestElementsUnknownFormat(t *testing.T) {
	cfgPath := writeConfig(t)
	if _, err := run(t, "--config", cfgPath, "elements", "-f", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestServeInvalidLogLevel(t *testing.T) {
	cfgPath := writeConfig(t)
	_, err := run(t, "--config", cfgPath, "--log-level", "loud", "serve")
	if err == nil || !strings.Contains(err.Error(), "log level") {
		t.Errorf("expected log level error, got %v", err)
	}
}

func TestServeWatchWithoutSeed(t *testing.T) {
	cfgPath := writeConfig(t)
	if _, err := run(t, "--config", cfgPath, "serve", "--watch"); err == nil {
		t.Error("expected error for watch without seed path")
	}
}

func TestRunServeStopsOnCancel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var logs bytes.Buffer
	logger, err := newLogger(&logs, &globalOptions{}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if err := runServe(ctx, cfg, logger); err != nil {
		t.Fatalf("runServe: %v", err)
	}
	if !strings.Contains(logs.String(), "Server stopped") {
		t.Errorf("expected shutdown log, got:\n%s", logs.String())
	}
}

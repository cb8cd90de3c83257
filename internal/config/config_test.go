package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arvidh/chartstudio/pkg/models"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def := Default()
	if cfg.ListenAddr != def.ListenAddr {
		t.Errorf("listen addr: got %q, want %q", cfg.ListenAddr, def.ListenAddr)
	}
	if len(cfg.Defaults.Metrics) != len(def.Defaults.Metrics) {
		t.Errorf("default metrics: got %d, want %d", len(cfg.Defaults.Metrics), len(def.Defaults.Metrics))
	}
	if cfg.Defaults.Kind != models.ChartKindRadar {
		t.Errorf("default kind: got %q, want radar", cfg.Defaults.Kind)
	}
}

func TestLoadOverridesAndKeepsRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
listen_addr: "127.0.0.1:9999"
defaults:
  metrics:
    - label: Quality
      value: 80
    - label: Speed
      value: 60
  factor: 1.5
  color: "#FF0000"
  fill_opacity: 0.4
  kind: bar
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("listen addr: got %q", cfg.ListenAddr)
	}
	// font_path not set in the file, so the default survives.
	if cfg.FontPath != Default().FontPath {
		t.Errorf("font path: got %q, want default %q", cfg.FontPath, Default().FontPath)
	}
	if len(cfg.Defaults.Metrics) != 2 || cfg.Defaults.Metrics[0].Label != "Quality" {
		t.Errorf("metrics not overridden: %+v", cfg.Defaults.Metrics)
	}
	if cfg.Defaults.Kind != models.ChartKindBar {
		t.Errorf("kind: got %q, want bar", cfg.Defaults.Kind)
	}
	if cfg.Defaults.Factor != 1.5 {
		t.Errorf("factor: got %v, want 1.5", cfg.Defaults.Factor)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "defaults:\n  kind: pie\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown chart kind, got nil")
	}
}

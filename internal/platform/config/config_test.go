package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
storage:
  driver: memory
render:
  width: 512
  error_correction: H
logging:
  level: debug
  format: text
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "memory" {
		t.Errorf("Expected memory driver, got %s", cfg.Storage.Driver)
	}
	if cfg.Render.Width != 512 || cfg.Render.ErrorCorrection != "H" {
		t.Errorf("Unexpected render config %+v", cfg.Render)
	}
	// Keys absent from the file keep their defaults
	if cfg.Render.Margin != 2 {
		t.Errorf("Expected default margin 2, got %d", cfg.Render.Margin)
	}
	if cfg.Cache.RenderTTL != 10*time.Minute {
		t.Errorf("Expected default render TTL, got %v", cfg.Cache.RenderTTL)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("Expected sqlite driver, got %s", cfg.Storage.Driver)
	}
	if cfg.Render.Width != 320 || cfg.Render.ErrorCorrection != "M" {
		t.Errorf("Unexpected render defaults %+v", cfg.Render)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORAGE_DRIVER", "redis")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Expected port 7070 from env, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "redis" {
		t.Errorf("Expected redis driver from env, got %s", cfg.Storage.Driver)
	}
}

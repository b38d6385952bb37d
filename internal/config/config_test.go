package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("port: got %s, want 3000", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "http://localhost:8080/api/v1" {
		t.Errorf("backend base URL: got %s", cfg.Backend.BaseURL)
	}
	if cfg.BackendTimeout() != 15*time.Second {
		t.Errorf("backend timeout: got %v, want 15s", cfg.BackendTimeout())
	}
	if cfg.SessionMaxAge() != 720*time.Hour {
		t.Errorf("session max age: got %v, want 720h", cfg.SessionMaxAge())
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "4000")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "3500"
  mode: production
backend:
  base_url: https://api.lyra.example/api/v1
  timeout: 5s
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env beats file.
	if cfg.Server.Port != "4000" {
		t.Errorf("port: got %s, want the env override 4000", cfg.Server.Port)
	}
	if cfg.Server.Mode != "production" {
		t.Errorf("mode: got %s, want production", cfg.Server.Mode)
	}
	if cfg.Backend.BaseURL != "https://api.lyra.example/api/v1" {
		t.Errorf("backend base URL: got %s", cfg.Backend.BaseURL)
	}
	if cfg.BackendTimeout() != 5*time.Second {
		t.Errorf("backend timeout: got %v, want 5s", cfg.BackendTimeout())
	}
	if cfg.Session.Secret != "env-secret" {
		t.Errorf("session secret: got %s", cfg.Session.Secret)
	}
}

func TestLoadConfigRejectsMissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing session secret")
	}
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("BACKEND_TIMEOUT", "soon")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for an unparsable timeout")
	}
}

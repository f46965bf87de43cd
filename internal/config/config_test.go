package config

import (
	"path/filepath"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("TASKLIST_DIR", "")
	t.Setenv("TASKLIST_BACKEND", "")
	t.Setenv("TASKLIST_DEBUG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	cfg, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != filepath.Join("/xdg", AppName) {
		t.Errorf("expected XDG dir, got %q", cfg.Dir)
	}
	if cfg.Backend != BackendBolt {
		t.Errorf("expected default backend %q, got %q", BackendBolt, cfg.Backend)
	}
	if cfg.Debug {
		t.Error("expected debug off by default")
	}
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("TASKLIST_DIR", "/from-env")
	t.Setenv("TASKLIST_BACKEND", "SQLite")
	t.Setenv("TASKLIST_DEBUG", "true")

	cfg, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != "/from-env" {
		t.Errorf("expected env dir, got %q", cfg.Dir)
	}
	if cfg.Backend != BackendSQLite {
		t.Errorf("expected sqlite backend, got %q", cfg.Backend)
	}
	if !cfg.Debug {
		t.Error("expected debug from env")
	}
	if cfg.DataPath() != filepath.Join("/from-env", "tasks.sqlite") {
		t.Errorf("unexpected data path %q", cfg.DataPath())
	}
}

func TestNew_FlagDirWins(t *testing.T) {
	t.Setenv("TASKLIST_DIR", "/from-env")

	cfg, err := New("/from-flag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != "/from-flag" {
		t.Errorf("expected flag dir, got %q", cfg.Dir)
	}
	if cfg.DataPath() != filepath.Join("/from-flag", "tasks.db") {
		t.Errorf("unexpected data path %q", cfg.DataPath())
	}
}

func TestNew_InvalidEnv(t *testing.T) {
	t.Setenv("TASKLIST_DEBUG", "maybe")
	if _, err := New(""); err == nil {
		t.Error("expected error for invalid TASKLIST_DEBUG")
	}

	t.Setenv("TASKLIST_DEBUG", "")
	t.Setenv("TASKLIST_BACKEND", "postgres")
	if _, err := New(""); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestTokenHelpers(t *testing.T) {
	cfg := &Config{Dir: t.TempDir()}

	if cfg.HasToken() || cfg.HasOAuthClient() {
		t.Fatal("expected no credential files in empty dir")
	}
	if err := cfg.RemoveToken(); err == nil {
		t.Error("expected error removing missing token")
	}
}

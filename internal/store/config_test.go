package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("CHARTODO_CONFIG_DIR", t.TempDir())
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataDir != "" || cfg.Backend != "" || len(cfg.Guard) != 0 {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestConfig_SetSaveLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHARTODO_CONFIG_DIR", dir)

	cfg := &Config{}
	for k, v := range map[string]string{
		"data_dir":     "/tmp/lists",
		"backend":      "sqlite",
		"color":        "never",
		"guard.rmtodo": "8",
	} {
		if err := cfg.Set(k, v); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("read config.toml: %v", err)
	}
	if !strings.Contains(string(b), `backend = "sqlite"`) {
		t.Fatalf("unexpected toml:\n%s", b)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.DataDir != "/tmp/lists" || got.Backend != "sqlite" || got.Color != "never" || got.Guard["rmtodo"] != 8 {
		t.Fatalf("unexpected config %+v", got)
	}
}

func TestConfig_SetRejectsBadValues(t *testing.T) {
	cfg := &Config{}
	bad := [][2]string{
		{"backend", "mongo"},
		{"color", "sometimes"},
		{"guard.rmtodo", "-1"},
		{"guard.frobnicate", "3"},
		{"nope", "x"},
	}
	for _, kv := range bad {
		if err := cfg.Set(kv[0], kv[1]); err == nil {
			t.Fatalf("Set(%s=%s): expected error", kv[0], kv[1])
		}
	}
}

func TestConfig_ParseError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHARTODO_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("backend = \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDefaultDataDir_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	d, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir: %v", err)
	}
	if d != filepath.Join("/xdg/data", "chartodo") {
		t.Fatalf("unexpected %s", d)
	}
}

package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the optional ~/.config/chartodo/config.toml.
type Config struct {
	// DataDir holds the list documents. Empty means DefaultDataDir().
	DataDir string `toml:"data_dir,omitempty"`
	// Backend is "json" (default) or "sqlite".
	Backend string `toml:"backend,omitempty"`
	// Color is "auto" (default), "always" or "never".
	Color string `toml:"color,omitempty"`
	// LogLevel is a charmbracelet/log level name.
	LogLevel string `toml:"log_level,omitempty"`

	// Guard overrides bulk-intent thresholds by command name (done, rmtodo, ...).
	Guard map[string]int `toml:"guard,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching the real config).
	if v := strings.TrimSpace(os.Getenv("CHARTODO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "chartodo"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultDataDir follows the XDG data dir convention.
func DefaultDataDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); v != "" {
		return filepath.Join(v, "chartodo"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "chartodo"), nil
}

func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.toml.*.tmp", path, buf.Bytes(), 0o644)
}

// ConfigKeys lists the keys accepted by Set.
func ConfigKeys() []string {
	keys := []string{"data_dir", "backend", "color", "log_level"}
	for op := range guardKeys {
		keys = append(keys, "guard."+op)
	}
	sort.Strings(keys)
	return keys
}

var guardKeys = map[string]bool{
	"done":    true,
	"rmtodo":  true,
	"rmdone":  true,
	"notdone": true,
	"reset":   true,
}

// Set assigns one key from its string form, validating enumerations.
func (c *Config) Set(key, value string) error {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	switch key {
	case "data_dir":
		c.DataDir = value
	case "backend":
		if _, err := ParseBackend(value); err != nil {
			return err
		}
		c.Backend = value
	case "color":
		switch value {
		case "", "auto", "always", "never":
			c.Color = value
		default:
			return fmt.Errorf("invalid color %q (expected auto|always|never)", value)
		}
	case "log_level":
		c.LogLevel = value
	default:
		op, ok := strings.CutPrefix(key, "guard.")
		if !ok || !guardKeys[op] {
			return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(ConfigKeys(), ", "))
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid threshold %q for %s (expected a non-negative integer)", value, key)
		}
		if c.Guard == nil {
			c.Guard = map[string]int{}
		}
		c.Guard[op] = n
	}
	return nil
}

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBrandSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme", "acme"},
		{"Acme Corp", "acme-corp"},
		{"snake_case", "snake-case"},
		{"Ümlauts & Co", "mlauts--co"},
		{"株式会社", "logo"},
		{"", "logo"},
	}
	for _, tt := range tests {
		if got := brandSlug(tt.in); got != tt.want {
			t.Errorf("brandSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	// Point at an empty config home so no real file is picked up.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfig()
	if cfg.Ledger.Backend != "file" {
		t.Errorf("default backend = %q, want file", cfg.Ledger.Backend)
	}
	if cfg.Ledger.Redis.Addr == "" || cfg.Ledger.Mongo.URI == "" {
		t.Error("connection defaults should be populated")
	}
}

func TestLoadConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
[defaults]
variations = 7
primary_color = "#112233"

[ledger]
backend = "redis"

[ledger.redis]
addr = "redis.internal:6379"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	if cfg.Defaults.Variations != 7 {
		t.Errorf("Variations = %d, want 7", cfg.Defaults.Variations)
	}
	if cfg.Defaults.PrimaryColor != "#112233" {
		t.Errorf("PrimaryColor = %q", cfg.Defaults.PrimaryColor)
	}
	if cfg.Ledger.Backend != "redis" {
		t.Errorf("Backend = %q, want redis", cfg.Ledger.Backend)
	}
	if cfg.Ledger.Redis.Addr != "redis.internal:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Ledger.Redis.Addr)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A broken config never blocks generation.
	cfg := LoadConfig()
	if cfg.Ledger.Backend != "file" {
		t.Errorf("malformed config should fall back to defaults, got %q", cfg.Ledger.Backend)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := []string{"generate", "regenerate", "algorithms", "guidelines", "ledger", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}
}

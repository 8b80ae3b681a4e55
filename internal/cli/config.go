package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration, read from
// ~/.config/logomark/config.toml (or $XDG_CONFIG_HOME/logomark/config.toml).
// Every field has a working default; the file is optional.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Ledger   LedgerConfig   `toml:"ledger"`
}

// DefaultsConfig seeds generation flags that were not given on the command line.
type DefaultsConfig struct {
	Variations   int     `toml:"variations"`
	MinScore     float64 `toml:"min_score"`
	Candidates   int     `toml:"candidates"`
	PrimaryColor string  `toml:"primary_color"`
	AccentColor  string  `toml:"accent_color"`
}

// LedgerConfig selects and configures the uniqueness-ledger backend.
// Backend is one of "file", "memory", "redis", "mongo"; file is the default.
type LedgerConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig mirrors the redis backend connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig mirrors the mongo backend connection settings.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{},
		Ledger: LedgerConfig{
			Backend: "file",
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017"},
		},
	}
}

// LoadConfig reads the config file if it exists. A missing or unreadable
// file yields defaults; a malformed file also falls back to defaults so a
// broken config never blocks generation.
func LoadConfig() *Config {
	cfg := defaultConfig()
	path, err := configPath()
	if err != nil {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return defaultConfig()
	}
	if cfg.Ledger.Backend == "" {
		cfg.Ledger.Backend = "file"
	}
	return cfg
}

// configPath returns the config file location using the XDG convention.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

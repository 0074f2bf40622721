// Package config loads application configuration from defaults, an
// optional YAML file, and CLIENTFLOW_* environment variables, in that
// order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DataDir  string       `koanf:"data_dir"`
	Backend  string       `koanf:"backend"` // "sqlite" or "file"
	LogLevel string       `koanf:"log_level"`
	LogFile  string       `koanf:"log_file"`
	Backup   BackupConfig `koanf:"backup"`
}

type BackupConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Schedule string `koanf:"schedule"` // cron expression
	Dir      string `koanf:"dir"`
	Keep     int    `koanf:"keep"`
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"

	DefaultBackend        = BackendSQLite
	DefaultLogLevel       = "info"
	DefaultBackupSchedule = "@hourly"
	DefaultBackupKeep     = 10
)

// DefaultDataDir is <user config dir>/clientflow, falling back to a
// relative directory when the platform dir cannot be resolved.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".clientflow"
	}
	return filepath.Join(base, "clientflow")
}

// Load reads configuration. configPath may be empty, in which case
// <data dir>/config.yaml is tried and silently skipped when absent.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	dataDir := DefaultDataDir()
	defaults := map[string]interface{}{
		"data_dir":        dataDir,
		"backend":         DefaultBackend,
		"log_level":       DefaultLogLevel,
		"backup.enabled":  false,
		"backup.schedule": DefaultBackupSchedule,
		"backup.dir":      filepath.Join(dataDir, "backups"),
		"backup.keep":     DefaultBackupKeep,
	}
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("config default %s: %w", key, err)
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
	} else {
		implicit := filepath.Join(dataDir, "config.yaml")
		if _, err := os.Stat(implicit); err == nil {
			if err := k.Load(file.Provider(implicit), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config %s: %w", implicit, err)
			}
		}
	}

	// Double underscore nests: CLIENTFLOW_BACKUP__SCHEDULE -> backup.schedule.
	if err := k.Load(env.Provider("CLIENTFLOW_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "CLIENTFLOW_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("config: unknown backend %q (want %q or %q)", c.Backend, BackendSQLite, BackendFile)
	}
	if c.Backup.Keep < 1 {
		return fmt.Errorf("config: backup.keep must be at least 1, got %d", c.Backup.Keep)
	}
	return nil
}

// DatabasePath is where the sqlite backend keeps its database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "clientflow.db")
}

// FileStoreDir is where the file backend keeps its per-key JSON files.
func (c *Config) FileStoreDir() string {
	return filepath.Join(c.DataDir, "data")
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks that values are usable.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.RandomOrg.Timeout < 0 {
		return fmt.Errorf("random_org.timeout must be >= 0, got %s", c.RandomOrg.Timeout)
	}
	if c.TablesPath != "" && c.CatalogDSN != "" {
		return fmt.Errorf("tables_path and catalog_dsn are mutually exclusive")
	}
	return nil
}

// SlogLevel maps log.level to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
}

// Package config loads the tradegoods YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Seed       int64           `yaml:"seed"`        // 0 = non-deterministic
	TablesPath string          `yaml:"tables_path"` // YAML table override
	CatalogDSN string          `yaml:"catalog_dsn"` // sqlite path or postgres URL
	RandomOrg  RandomOrgConfig `yaml:"random_org"`
	Log        LogConfig       `yaml:"log"`
}

// RandomOrgConfig enables the random.org dice pool.
type RandomOrgConfig struct {
	APIKey   string        `yaml:"api_key"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a YAML config file and expands ${VAR} environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates. An empty
// path yields the defaults.
func LoadAndValidate(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		var err error
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Overrides are command-line values that take precedence over the file.
// Zero fields leave the loaded value alone.
type Overrides struct {
	Seed       int64
	TablesPath string
	CatalogDSN string
}

// Apply copies the non-zero overrides into c and validates the result, so a
// flag cannot combine with a file setting into a config Validate rejects.
func (c *Config) Apply(o Overrides) error {
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.TablesPath != "" {
		c.TablesPath = o.TablesPath
	}
	if o.CatalogDSN != "" {
		c.CatalogDSN = o.CatalogDSN
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validate overrides: %w", err)
	}
	return nil
}

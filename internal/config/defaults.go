package config

import (
	"time"

	"github.com/talgya/tradegoods/internal/entropy"
)

// Default values for optional configuration fields.
const (
	DefaultRandomOrgTimeout = 15 * time.Second
	DefaultLogLevel         = "info"
)

func (c *Config) applyDefaults() {
	if c.RandomOrg.Endpoint == "" {
		c.RandomOrg.Endpoint = entropy.DefaultEndpoint
	}
	if c.RandomOrg.Timeout == 0 {
		c.RandomOrg.Timeout = DefaultRandomOrgTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

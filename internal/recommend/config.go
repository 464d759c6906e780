// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package recommend

import (
	"fmt"
	"time"
)

// Config contains operational settings for the recommendation engine.
type Config struct {
	// DefaultK is the neighbor count used when a request does not specify
	// one.
	DefaultK int `json:"default_k" koanf:"default_k"`

	// MaxK caps the neighbor count of a single request.
	MaxK int `json:"max_k" koanf:"max_k"`

	// TopDefaultN is the result count for the top-movies view when the
	// request does not specify one.
	TopDefaultN int `json:"top_default_n" koanf:"top_default_n"`

	// CacheEnabled turns the recommendation memo cache on.
	CacheEnabled bool `json:"cache_enabled" koanf:"cache_enabled"`

	// CacheTTL is the memo lifetime. The catalog never changes within a
	// process, so a long TTL is safe; the TTL exists only to bound memory.
	CacheTTL time.Duration `json:"cache_ttl" koanf:"cache_ttl"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultK:     5,
		MaxK:         50,
		TopDefaultN:  50,
		CacheEnabled: true,
		CacheTTL:     1 * time.Hour,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be >= 1, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k (%d) must be >= default_k (%d)", c.MaxK, c.DefaultK)
	}
	if c.TopDefaultN < 1 {
		return fmt.Errorf("top_default_n must be >= 1, got %d", c.TopDefaultN)
	}
	if c.CacheEnabled && c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive when the cache is enabled")
	}
	return nil
}

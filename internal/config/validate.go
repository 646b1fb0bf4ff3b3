// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Store validation
	if c.Store.BaseURL == "" {
		errs = append(errs, "store.base_url: required")
	} else if u, err := url.Parse(c.Store.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Sprintf("store.base_url: must be an http(s) URL, got %q", c.Store.BaseURL))
	}
	if c.Store.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("store.timeout: must not be negative, got %s", c.Store.Timeout))
	}
	if c.Store.CategoryCacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("store.category_cache_ttl: must not be negative, got %s", c.Store.CategoryCacheTTL))
	}

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.Database.Path == "" {
		errs = append(errs, "database.path: required")
	}

	// Search validation
	if c.Search.FuzzyThreshold <= 0 || c.Search.FuzzyThreshold > 1 {
		errs = append(errs, fmt.Sprintf("search.fuzzy_threshold: must be in (0, 1], got %g", c.Search.FuzzyThreshold))
	}

	return errs
}

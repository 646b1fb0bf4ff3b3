// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied to keys the file leaves out.
const (
	DefaultStoreURL         = "http://localhost:3000"
	DefaultStoreTimeout     = 10 * time.Second
	DefaultCategoryCacheTTL = 5 * time.Minute
	DefaultHost             = "127.0.0.1"
	DefaultPort             = 3000
	DefaultLogLevel         = "info"
	DefaultDatabasePath     = "./data/vmanager.db"
	DefaultFuzzyThreshold   = 0.85
)

// Config is the root configuration structure.
type Config struct {
	Store    StoreConfig    `toml:"store"`
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Search   SearchConfig   `toml:"search"`
}

// StoreConfig locates the REST store the CLI reads and writes.
type StoreConfig struct {
	BaseURL          string        `toml:"base_url"`
	Timeout          time.Duration `toml:"timeout"`
	CategoryCacheTTL time.Duration `toml:"category_cache_ttl"` // 0 disables caching
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SearchConfig sets how `list --search` matches.
type SearchConfig struct {
	Fuzzy          bool    `toml:"fuzzy"`
	FuzzyThreshold float64 `toml:"fuzzy_threshold"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults(toml.MetaData{})
	return cfg
}

// Load reads, parses, and validates the configuration file.
// Errors are returned as *ConfigError where possible.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file and applies
// defaults, without validating values.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults(md)
	return &cfg, nil
}

func (c *Config) applyDefaults(md toml.MetaData) {
	if c.Store.BaseURL == "" {
		c.Store.BaseURL = DefaultStoreURL
	}
	if c.Store.Timeout == 0 {
		c.Store.Timeout = DefaultStoreTimeout
	}
	// An explicit 0 turns the cache off, so only fill in a missing key.
	if !md.IsDefined("store", "category_cache_ttl") {
		c.Store.CategoryCacheTTL = DefaultCategoryCacheTTL
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = DefaultLogLevel
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if !md.IsDefined("search", "fuzzy_threshold") {
		c.Search.FuzzyThreshold = DefaultFuzzyThreshold
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment variable references and returns
// the unresolved ones. Unresolved references are left in place.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return result, missing
}

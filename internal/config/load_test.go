// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, `
[store]
base_url = "http://store.local:8080"
timeout = "3s"
category_cache_ttl = "1m"

[server]
port = 8080

[search]
fuzzy = true
fuzzy_threshold = 0.9
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.BaseURL != "http://store.local:8080" {
		t.Errorf("expected base_url, got %s", cfg.Store.BaseURL)
	}
	if cfg.Store.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", cfg.Store.Timeout)
	}
	if cfg.Store.CategoryCacheTTL != time.Minute {
		t.Errorf("expected category_cache_ttl 1m, got %s", cfg.Store.CategoryCacheTTL)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if !cfg.Search.Fuzzy || cfg.Search.FuzzyThreshold != 0.9 {
		t.Errorf("expected fuzzy search at 0.9, got %+v", cfg.Search)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("VMANAGER_MISSING_URL")
	cfgPath := writeConfig(t, `
[store]
base_url = "${VMANAGER_MISSING_URL}"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	if !strings.Contains(err.Error(), "VMANAGER_MISSING_URL") {
		t.Errorf("expected VMANAGER_MISSING_URL in error, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || len(cfgErr.Missing) != 1 {
		t.Errorf("expected ConfigError with one missing var, got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 99999
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("expected server.port in error, got %v", err)
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	cfgPath := writeConfig(t, `[server`)

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfgPath := writeConfig(t, "")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.BaseURL != DefaultStoreURL {
		t.Errorf("expected default base_url %s, got %s", DefaultStoreURL, cfg.Store.BaseURL)
	}
	if cfg.Store.Timeout != DefaultStoreTimeout {
		t.Errorf("expected default timeout, got %s", cfg.Store.Timeout)
	}
	if cfg.Store.CategoryCacheTTL != DefaultCategoryCacheTTL {
		t.Errorf("expected default cache ttl, got %s", cfg.Store.CategoryCacheTTL)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("expected default host %s, got %s", DefaultHost, cfg.Server.Host)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Server.Port)
	}
	if cfg.Search.FuzzyThreshold != DefaultFuzzyThreshold {
		t.Errorf("expected default fuzzy threshold, got %g", cfg.Search.FuzzyThreshold)
	}
}

func TestLoad_ExplicitZeroCacheTTL(t *testing.T) {
	cfgPath := writeConfig(t, `
[store]
category_cache_ttl = "0s"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.CategoryCacheTTL != 0 {
		t.Errorf("expected cache disabled, got %s", cfg.Store.CategoryCacheTTL)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 99999
`)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 99999 {
		t.Errorf("expected port 99999, got %d", cfg.Server.Port)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("VMANAGER_OPTIONAL_HOST")
	cfgPath := writeConfig(t, `
[server]
host = "${VMANAGER_OPTIONAL_HOST:-localhost}"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected host localhost, got %s", cfg.Server.Host)
	}
}

package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Port:             "8082",
		DataBackend:      "sqlite",
		SQLiteDBPath:     filepath.Join(dir, "test.db"),
		ExportDir:        filepath.Join(dir, "exports"),
		SummaryCacheSize: 32,
		SummaryCacheTTL:  2 * time.Minute,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid sqlite backend config",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid memory backend config",
			mutate: func(c *Config) { c.DataBackend = "memory" },
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid data backend 'sheets'",
		},
		{
			name:        "sqlite backend missing database path",
			mutate:      func(c *Config) { c.SQLiteDBPath = "" },
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name:        "empty export dir",
			mutate:      func(c *Config) { c.ExportDir = "" },
			wantErr:     true,
			errorString: "export directory cannot be empty",
		},
		{
			name:        "cache size too small",
			mutate:      func(c *Config) { c.SummaryCacheSize = 0 },
			wantErr:     true,
			errorString: "invalid summary cache size 0",
		},
		{
			name:        "cache TTL too small",
			mutate:      func(c *Config) { c.SummaryCacheTTL = 100 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid summary cache TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SQLITE_DB_PATH", "EXPORT_DIR", "DATA_BACKEND", "SUMMARY_CACHE_SIZE", "SUMMARY_CACHE_TTL"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8082" {
		t.Fatalf("default port = %s", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("default backend = %s", cfg.DataBackend)
	}
	if cfg.SummaryCacheSize != 32 || cfg.SummaryCacheTTL != 2*time.Minute {
		t.Fatalf("default cache settings = %d/%v", cfg.SummaryCacheSize, cfg.SummaryCacheTTL)
	}
}

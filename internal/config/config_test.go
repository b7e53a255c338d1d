package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.env")
	content := "STORE_DSN=bolt://catalog.db\nHTTP_ADDR=:9090\nID_STRATEGY=uuid\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDSN != "bolt://catalog.db" {
		t.Fatalf("expected store dsn from file, got %q", cfg.StoreDSN)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected http addr :9090, got %q", cfg.HTTPAddr)
	}
	if cfg.IDStrategy != "uuid" {
		t.Fatalf("expected uuid strategy, got %q", cfg.IDStrategy)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=warn\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected env to win, got %q", cfg.LogLevel)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"sequential", Config{IDStrategy: "sequential"}, false},
		{"uuid upper", Config{IDStrategy: "UUID"}, false},
		{"unknown strategy", Config{IDStrategy: "random"}, true},
		{"json logs", Config{LogFormat: "json"}, false},
		{"unknown format", Config{LogFormat: "xml"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

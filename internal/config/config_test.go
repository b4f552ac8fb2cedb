package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Explorer.MainnetURL != "https://mempool.space/api" {
		t.Errorf("expected default mainnet URL, got %s", cfg.Explorer.MainnetURL)
	}
	if cfg.Explorer.TestnetURL != "https://mempool.space/testnet/api" {
		t.Errorf("expected default testnet URL, got %s", cfg.Explorer.TestnetURL)
	}
	if cfg.Explorer.RequestTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Explorer.RequestTimeout)
	}
	if cfg.Output.Dir != "." {
		t.Errorf("expected output dir '.', got %s", cfg.Output.Dir)
	}
	if cfg.Log.Output != "stderr" {
		t.Errorf("expected log output stderr, got %s", cfg.Log.Output)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EXPLORER_MAINNET_URL", "http://localhost:3000/api")
	t.Setenv("EXPLORER_REQUEST_TIMEOUT", "5s")
	t.Setenv("API_PORT", "9090")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Explorer.MainnetURL != "http://localhost:3000/api" {
		t.Errorf("expected overridden mainnet URL, got %s", cfg.Explorer.MainnetURL)
	}
	if cfg.Explorer.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Explorer.RequestTimeout)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.API.Port)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	// godotenv sets process env vars; register cleanup through t.Setenv first
	t.Setenv("OUTPUT_DIR", "")
	os.Unsetenv("OUTPUT_DIR")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("OUTPUT_DIR=/tmp/balances\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Output.Dir != "/tmp/balances" {
		t.Errorf("expected output dir from .env, got %s", cfg.Output.Dir)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("EXPLORER_REQUEST_TIMEOUT", "not-a-duration")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error, got nil")
	}
}

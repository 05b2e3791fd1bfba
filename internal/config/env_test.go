package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=debug\nBLOG_ADDR=:7000\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	// 既存の値は保持される
	t.Setenv(envAddr, ":9999")
	t.Setenv(envLogLevel, "")
	os.Unsetenv(envLogLevel)

	loadDotEnvFile(path)

	if got := os.Getenv(envLogLevel); got != "debug" {
		t.Fatalf("expected LOG_LEVEL from .env, got %q", got)
	}
	if got := os.Getenv(envAddr); got != ":9999" {
		t.Fatalf("existing env must win, got %q", got)
	}
}

func TestLoadDotEnvFile_Missing(t *testing.T) {
	loadDotEnvFile(filepath.Join(t.TempDir(), "absent.env"))
}

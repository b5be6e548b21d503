package config

import (
	"os"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	_ = os.Unsetenv("AURA_HTTP_PORT")
	_ = os.Unsetenv("AURA_AUTOSAVE_INTERVAL_SECONDS")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8990 || cfg.AutoSaveIntervalSeconds != 30 || !cfg.SeedSampleData {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.GetHTTPAddr() != ":8990" {
		t.Fatalf("addr = %q", cfg.GetHTTPAddr())
	}
}

func TestConfigEnvOverride(t *testing.T) {
	_ = os.Setenv("AURA_HTTP_PORT", "9123")
	defer func() { _ = os.Unsetenv("AURA_HTTP_PORT") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9123 {
		t.Fatalf("env override failed, got %d", cfg.HTTPPort)
	}
}

func TestConfigRejectsNonPositiveInterval(t *testing.T) {
	_ = os.Setenv("AURA_AUTOSAVE_INTERVAL_SECONDS", "0")
	defer func() { _ = os.Unsetenv("AURA_AUTOSAVE_INTERVAL_SECONDS") }()

	if _, err := New(); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}

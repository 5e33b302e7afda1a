package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if cfg.Server.Host != "localhost" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "localhost")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if err := cfg.Recall.Validate(); err != nil {
		t.Errorf("default recall config invalid: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SNAPSHOT_DIR", "/data/snapshot")
	t.Setenv("TELEMETRY_PARQUET_PATH", "/data/telemetry")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Snapshot.Dir != "/data/snapshot" {
		t.Errorf("Snapshot.Dir = %q, want %q", cfg.Snapshot.Dir, "/data/snapshot")
	}
	if cfg.Telemetry.ParquetPath != "/data/telemetry" {
		t.Errorf("Telemetry.ParquetPath = %q, want %q", cfg.Telemetry.ParquetPath, "/data/telemetry")
	}
}

func TestEnvOverrideIgnoresBadPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("default PORT = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("default DB_PORT = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Errorf("default DB_SSLMODE = %q, want disable", cfg.Database.SSLMode)
	}
	if cfg.Reconciler.Enabled {
		t.Error("reconciler should be disabled by default")
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry should be disabled by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("RECONCILER_ENABLED", "true")
	t.Setenv("RECONCILER_TIMES", "01:00,13:00")
	t.Setenv("RECONCILER_JOB_DELAY", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("PORT = %q, want 9999", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 5433 {
		t.Errorf("database config = %+v", cfg.Database)
	}
	if !cfg.Reconciler.Enabled {
		t.Error("reconciler should be enabled")
	}
	if len(cfg.Reconciler.ScheduleTimes) != 2 {
		t.Errorf("schedule times = %v, want two entries", cfg.Reconciler.ScheduleTimes)
	}
	if cfg.Reconciler.JobDelay != 2*time.Second {
		t.Errorf("job delay = %v, want 2s", cfg.Reconciler.JobDelay)
	}
}

func TestLoadInvalidDBPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Load should fail on invalid DB_PORT")
	}
}

func TestLoadTLSRequiresPaths(t *testing.T) {
	t.Setenv("TLS_ENABLED", "true")

	if _, err := Load(); err == nil {
		t.Error("Load should fail when TLS is enabled without cert/key paths")
	}
}

func TestConnectionString(t *testing.T) {
	c := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "d", SSLMode: "disable",
	}
	want := "host=localhost port=5432 user=u password=p dbname=d sslmode=disable"
	if got := c.ConnectionString(); got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}
}

package config

import (
	"testing"
	"time"

	"github.com/pucktrack/pucktrack/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	// The NHL host uses a hyphen: api-web.nhle.com.
	if cfg.NHLAPIBaseURL != "https://api-web.nhle.com/v1" {
		t.Fatalf("unexpected NHLAPIBaseURL: %q", cfg.NHLAPIBaseURL)
	}
	if cfg.NHLFetchTimeout != 30*time.Second {
		t.Fatalf("unexpected NHLFetchTimeout: %s", cfg.NHLFetchTimeout)
	}
	if cfg.NHLMaxRetries != 3 {
		t.Fatalf("unexpected NHLMaxRetries: %d", cfg.NHLMaxRetries)
	}
	if cfg.SyncMaxWorkers != 4 {
		t.Fatalf("unexpected SyncMaxWorkers: %d", cfg.SyncMaxWorkers)
	}
	if cfg.UpdateSchedule != "0 3 * * *" {
		t.Fatalf("unexpected UpdateSchedule: %q", cfg.UpdateSchedule)
	}
	if !cfg.NHLCircuitEnabled {
		t.Fatalf("expected circuit breaker enabled by default")
	}
	if !cfg.DBDisablePreparedBinary {
		t.Fatalf("expected prepared binary results disabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_NHLClientKnobs(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("NHL_FETCH_TIMEOUT", "10s")
	t.Setenv("NHL_MAX_RETRIES", "5")
	t.Setenv("NHL_RATE_LIMIT_RPS", "2.5")
	t.Setenv("NHL_CIRCUIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.NHLFetchTimeout != 10*time.Second {
		t.Fatalf("unexpected NHLFetchTimeout: %s", cfg.NHLFetchTimeout)
	}
	if cfg.NHLMaxRetries != 5 {
		t.Fatalf("unexpected NHLMaxRetries: %d", cfg.NHLMaxRetries)
	}
	if cfg.NHLRateLimitRPS != 2.5 {
		t.Fatalf("unexpected NHLRateLimitRPS: %v", cfg.NHLRateLimitRPS)
	}
	if cfg.NHLCircuitEnabled {
		t.Fatalf("expected circuit breaker disabled")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_SyncWorkersLowerBound(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SYNC_MAX_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SYNC_MAX_WORKERS=0")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

package config

import (
	"testing"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
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
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("http addr got=%q want=%q", cfg.HTTPAddr, ":8080")
	}
	if cfg.ScorerMaxRetries != 2 {
		t.Fatalf("scorer retries got=%d want=2", cfg.ScorerMaxRetries)
	}
	if !cfg.ScorerCircuitEnabled {
		t.Fatalf("expected scorer circuit enabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("log level got=%v want=info", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("cors origins got=%v want=[*]", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_ProdRequiresDBAndScorer(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("DB_URL", "")
	t.Setenv("SCORER_BASE_URL", "https://scorer.example.com")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without DB_URL")
	}

	t.Setenv("DB_URL", "postgres://localhost:5432/app")
	t.Setenv("SCORER_BASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without SCORER_BASE_URL")
	}
}

func TestLoad_ScorerSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SCORER_BASE_URL", "https://scorer.example.com")
	t.Setenv("SCORER_API_KEY", "key-123")
	t.Setenv("SCORER_TIMEOUT", "3s")
	t.Setenv("SCORER_MAX_RETRIES", "4")
	t.Setenv("SCORER_CIRCUIT_FAILURE_COUNT", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ScorerTimeout != 3*time.Second {
		t.Fatalf("scorer timeout got=%v want=3s", cfg.ScorerTimeout)
	}
	if cfg.ScorerMaxRetries != 4 {
		t.Fatalf("scorer retries got=%d want=4", cfg.ScorerMaxRetries)
	}
	if cfg.ScorerCircuitFailureCount != 7 {
		t.Fatalf("failure count got=%d want=7", cfg.ScorerCircuitFailureCount)
	}
}

func TestLoad_CORSList(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("cors origins got=%v want 2 entries", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("second origin got=%q", cfg.CORSAllowedOrigins[1])
	}
}

package config

import (
	"testing"
	"time"

	"github.com/joehodgson0/teamhub/internal/platform/logging"
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
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if !cfg.UseInMemoryStore() {
		t.Fatalf("expected in-memory store when DB_URL is unset")
	}
	if cfg.SessionSecureOnly {
		t.Fatalf("expected SessionSecureOnly=false in dev")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if cfg.RecomputeWorkers != 4 {
		t.Fatalf("unexpected RecomputeWorkers: %d", cfg.RecomputeWorkers)
	}
}

func TestLoad_ProdRequiresSessionSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without SESSION_SECRET")
	}
}

func TestLoad_WebhookRequiresURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WEBHOOK_ENABLED", "true")
	t.Setenv("WEBHOOK_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when WEBHOOK_ENABLED=true without WEBHOOK_URL")
	}
}

func TestLoad_WebhookConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WEBHOOK_ENABLED", "true")
	t.Setenv("WEBHOOK_URL", "https://hooks.teamhub.test/events")
	t.Setenv("WEBHOOK_TOKEN", "token-123")
	t.Setenv("WEBHOOK_TIMEOUT", "7s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.WebhookEnabled {
		t.Fatalf("expected WebhookEnabled=true")
	}
	if cfg.WebhookURL != "https://hooks.teamhub.test/events" {
		t.Fatalf("unexpected WebhookURL: %q", cfg.WebhookURL)
	}
	if cfg.WebhookToken != "token-123" {
		t.Fatalf("unexpected WebhookToken")
	}
	if cfg.WebhookTimeout != 7*time.Second {
		t.Fatalf("unexpected WebhookTimeout: %s", cfg.WebhookTimeout)
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

func TestLoad_CORSOriginsSplit(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[0] != "https://a.test" || cfg.CORSAllowedOrigins[1] != "https://b.test" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

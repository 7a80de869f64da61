package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults: %v", err)
	}

	if cfg.Port != "8080" || cfg.GinMode != "release" || cfg.LogLevel != "info" {
		t.Fatalf("server defaults: %+v", cfg)
	}
	if cfg.WriteTimeout != 90*time.Second {
		t.Fatalf("WriteTimeout = %v", cfg.WriteTimeout)
	}
	if cfg.MaxBodyBytes != 10<<20 {
		t.Fatalf("MaxBodyBytes = %d", cfg.MaxBodyBytes)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.PendingTTL != time.Hour {
		t.Fatalf("PendingTTL = %v", cfg.PendingTTL)
	}
	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Fatalf("rate defaults: rps=%v burst=%d", cfg.RateRPS, cfg.RateBurst)
	}
	if cfg.Outbox.Interval != 15*time.Second || cfg.Outbox.MaxAttempts != 5 || cfg.Outbox.Backoff != time.Minute {
		t.Fatalf("outbox defaults: %+v", cfg.Outbox)
	}
	if cfg.AI.Timeout != 120*time.Second || cfg.AI.MaxTokens != 4096 {
		t.Fatalf("ai defaults: %+v", cfg.AI)
	}
	if cfg.OTEL.ServiceName != "palm-backend" || cfg.OTEL.SampleRatio != 1.0 {
		t.Fatalf("otel defaults: %+v", cfg.OTEL)
	}
}

func TestLoad_EnvOverridesAndNormalization(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "DEBUG")
	t.Setenv("LOG_LEVEL", "warning") // normalized to warn
	t.Setenv("API_BASE_PATH", "api/v2/")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example ,")
	t.Setenv("APP_BASE_URL", "https://app.example.com/")
	t.Setenv("RATE_RPS", "2.5")
	t.Setenv("PENDING_TTL", "30m")
	t.Setenv("MAX_BODY_BYTES", "1048576")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9090" || cfg.GinMode != "debug" || cfg.LogLevel != "warn" {
		t.Fatalf("overrides: port=%q mode=%q level=%q", cfg.Port, cfg.GinMode, cfg.LogLevel)
	}
	if cfg.APIBasePath != "/api/v2" {
		t.Fatalf("APIBasePath = %q", cfg.APIBasePath)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[0] != "https://a.example" {
		t.Fatalf("origins: %v", cfg.CORS.AllowedOrigins)
	}
	// Trailing slash is stripped so link building can append paths.
	if cfg.Email.AppBaseURL != "https://app.example.com" {
		t.Fatalf("AppBaseURL = %q", cfg.Email.AppBaseURL)
	}
	if cfg.RateRPS != 2.5 || cfg.PendingTTL != 30*time.Minute || cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("numeric overrides: %v %v %v", cfg.RateRPS, cfg.PendingTTL, cfg.MaxBodyBytes)
	}
}

func TestLoad_InvalidGinModeFallsBack(t *testing.T) {
	t.Setenv("GIN_MODE", "verbose")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("GinMode = %q", cfg.GinMode)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		k, v string
	}{
		{"bad log level", "LOG_LEVEL", "chatty"},
		{"zero body limit", "MAX_BODY_BYTES", "0"},
		{"negative rps", "RATE_RPS", "-1"},
		{"zero burst", "RATE_BURST", "0"},
		{"zero ttl", "PENDING_TTL", "0s"},
		{"zero outbox attempts", "OUTBOX_MAX_ATTEMPTS", "0"},
		{"sample ratio above one", "OTEL_TRACES_SAMPLER_ARG", "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.k, tc.v)
			if _, err := Load(); err == nil {
				t.Fatalf("%s=%s: expected a validation error", tc.k, tc.v)
			}
		})
	}
}

func TestMustLoad_PanicsOnInvalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustLoad()
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":         "/",
		"/":        "/",
		"api":      "/api",
		"/api/v1/": "/api/v1",
		" /x ":     "/x",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}

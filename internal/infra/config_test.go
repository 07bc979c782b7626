package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("USE_REMOTE_BACKEND", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SIMULATED_LATENCY", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.AppEnv != "development" || cfg.Port != "8080" {
		t.Fatalf("unexpected defaults: env=%q port=%q", cfg.AppEnv, cfg.Port)
	}
	if cfg.UseRemoteBackend {
		t.Fatalf("UseRemoteBackend default should be false")
	}
	if cfg.Backend() != "memory" {
		t.Fatalf("Backend() = %q, want memory", cfg.Backend())
	}
	if !cfg.SimulatedLatency {
		t.Fatalf("SimulatedLatency default should be true")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin = %d, want 30", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigRemoteRequiresDatabaseURL(t *testing.T) {
	t.Setenv("USE_REMOTE_BACKEND", "true")
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is missing")
	}
}

func TestLoadConfigRemoteBackend(t *testing.T) {
	t.Setenv("USE_REMOTE_BACKEND", "1")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("SIMULATED_LATENCY", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Backend() != "postgres" {
		t.Fatalf("Backend() = %q, want postgres", cfg.Backend())
	}
	if cfg.SimulatedLatency {
		t.Fatalf("SimulatedLatency should be false")
	}
	expected := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(expected) {
		t.Fatalf("CORSAllowedOrigins mismatch: got %#v want %#v", cfg.CORSAllowedOrigins, expected)
	}
	for i, origin := range expected {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin = %d, want fallback 30", cfg.RateLimitPerMin)
	}
}

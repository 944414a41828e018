package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_URL", "postgres://test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GENERATION_API_KEY", "gen-key")
	t.Setenv("WEATHER_API_KEY", "weather-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.FrontendOrigin != "http://localhost:5173" {
		t.Errorf("frontend origin = %q", cfg.FrontendOrigin)
	}
	if cfg.GenerationProvider != "openai" {
		t.Errorf("provider = %q", cfg.GenerationProvider)
	}
	if cfg.GenerationTimeout != 60*time.Second {
		t.Errorf("generation timeout = %v", cfg.GenerationTimeout)
	}
	if cfg.JWTTTL != 60*time.Minute {
		t.Errorf("jwt ttl = %v", cfg.JWTTTL)
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	keys := []string{"POSTGRES_URL", "JWT_SECRET", "GENERATION_API_KEY", "WEATHER_API_KEY"}

	for _, missing := range keys {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			if _, err := Load(); err == nil {
				t.Errorf("expected error when %s is unset", missing)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GENERATION_PROVIDER", "gemini")
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.GenerationProvider != "gemini" {
		t.Errorf("provider = %q", cfg.GenerationProvider)
	}
	if cfg.GenerationTimeout != 30*time.Second {
		t.Errorf("generation timeout = %v", cfg.GenerationTimeout)
	}
}

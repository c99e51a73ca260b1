package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("wrong http addr: got %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.DefaultFPS != 24 {
		t.Errorf("wrong default fps: got %d, want %d", cfg.DefaultFPS, 24)
	}
	if cfg.RedisAddr != "127.0.0.1:6379" {
		t.Errorf("wrong redis addr: got %q, want %q", cfg.RedisAddr, "127.0.0.1:6379")
	}
	if cfg.Environment != "dev" {
		t.Errorf("wrong environment: got %q, want %q", cfg.Environment, "dev")
	}
	if cfg.Log == nil {
		t.Error("logging config not loaded")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	os.Setenv("HTTP_ADDR", ":3000")
	os.Setenv("DEFAULT_FPS", "30")
	os.Setenv("REDIS_ADDR", "redis.internal:6380")
	os.Setenv("SENTRY_DSN", "https://key@sentry.example.com/42")
	defer func() {
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("DEFAULT_FPS")
		os.Unsetenv("REDIS_ADDR")
		os.Unsetenv("SENTRY_DSN")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPAddr != ":3000" {
		t.Errorf("wrong http addr: got %q, want %q", cfg.HTTPAddr, ":3000")
	}
	if cfg.DefaultFPS != 30 {
		t.Errorf("wrong default fps: got %d, want %d", cfg.DefaultFPS, 30)
	}
	if cfg.RedisAddr != "redis.internal:6380" {
		t.Errorf("wrong redis addr: got %q, want %q", cfg.RedisAddr, "redis.internal:6380")
	}
	if cfg.SentryDSN != "https://key@sentry.example.com/42" {
		t.Errorf("wrong sentry dsn: got %q", cfg.SentryDSN)
	}
}

func TestLoadConfigBadValue(t *testing.T) {
	os.Setenv("DEFAULT_FPS", "not-a-number")
	defer os.Unsetenv("DEFAULT_FPS")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error for an unreadable value")
	}
}

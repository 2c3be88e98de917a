package config

import (
	"errors"
	"testing"
)

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ADDR", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingDatabaseURL) {
		t.Fatalf("expected ErrMissingDatabaseURL, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/users")
	t.Setenv("APP_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.DatabaseURL != "postgres://localhost:5432/users" {
		t.Fatalf("unexpected database url %q", cfg.DatabaseURL)
	}
}

func TestLoad_ExplicitAddr(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/users")
	t.Setenv("APP_ADDR", ":9191")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Addr != ":9191" {
		t.Fatalf("expected :9191, got %q", cfg.Addr)
	}
}

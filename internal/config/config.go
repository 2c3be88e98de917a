package config

import (
	"errors"
	"os"
)

// ErrMissingDatabaseURL makes a missing connection string a startup failure
// instead of a confusing per-request one.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

type Config struct {
	Addr        string
	DatabaseURL string
}

func Load() (Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}

	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:        addr,
		DatabaseURL: databaseURL,
	}, nil
}

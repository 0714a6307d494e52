package impl

import (
	"io"
	"log/slog"

	"gatehouse/config"
)

// testLogger returns a logger that discards everything.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testConfig returns a config with the defaults the gateway ships with.
func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		BcryptCost:        8,
		MinPasswordLength: 4,
	}
	cfg.Session = &config.SessionConfig{
		CookieName: "chocolatechip",
	}

	return cfg
}

package mcpserver

import (
	"log/slog"

	"github.com/erraggy/apidoc2ts/internal/config"
)

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from APIDOC2TS_* environment variables.
// An invalid environment logs a warning and falls back to the defaults.
func loadConfig() *config.Config {
	c, err := config.Load()
	if err != nil {
		slog.Warn("invalid APIDOC2TS_* environment, using defaults", "error", err)
		return config.Default()
	}
	return c
}

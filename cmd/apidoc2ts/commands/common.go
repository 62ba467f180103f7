// Package commands provides CLI command handlers for apidoc2ts.
package commands

import (
	"fmt"

	"github.com/erraggy/apidoc2ts/internal/config"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// loadDefaults reads APIDOC2TS_* defaults. Flags override them.
func loadDefaults() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment defaults: %w", err)
	}
	return cfg, nil
}

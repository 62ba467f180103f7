// Package config loads apidoc2ts defaults from APIDOC2TS_* environment
// variables.
package config

import (
	"strings"

	env "github.com/caarlos0/env/v11"

	"github.com/erraggy/apidoc2ts/generator"
	"github.com/erraggy/apidoc2ts/internal/naming"
	"github.com/erraggy/apidoc2ts/parser"
	"github.com/erraggy/apidoc2ts/runner"
	"github.com/erraggy/apidoc2ts/tserrors"
)

// Prefix is prepended to every environment variable name.
const Prefix = "APIDOC2TS_"

// Config holds the defaults shared by the CLI and the MCP server.
// Command-line flags and tool arguments override these values.
type Config struct {
	// CustomTypes are externally defined type names, comma separated.
	CustomTypes []string `env:"CUSTOM_TYPES" envSeparator:","`
	// Workers bounds concurrent endpoint conversion; 0 selects GOMAXPROCS.
	Workers int `env:"WORKERS" envDefault:"0"`
	// DefaultName names root declarations that have no name or title.
	DefaultName string `env:"DEFAULT_NAME" envDefault:"Interface"`
	// Validate enables the endpoint envelope check.
	Validate bool `env:"VALIDATE" envDefault:"true"`
	// MaxInputBytes caps the size of source documents; 0 disables the cap.
	MaxInputBytes int64 `env:"MAX_INPUT_BYTES" envDefault:"67108864"`
	// MaxInlineSize caps inline content passed to MCP tools.
	MaxInlineSize int64 `env:"MAX_INLINE_SIZE" envDefault:"10485760"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, &tserrors.ConfigError{Option: "environment", Message: "failed to parse", Cause: err}
	}
	cfg.CustomTypes = SplitList(strings.Join(cfg.CustomTypes, ","))
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no environment variable is
// set.
func Default() *Config {
	return &Config{
		DefaultName:   generator.DefaultName,
		Validate:      true,
		MaxInputBytes: parser.DefaultMaxInputBytes,
		MaxInlineSize: 10 << 20,
	}
}

// Check validates value ranges and identifiers.
func (c *Config) Check() error {
	for _, name := range c.CustomTypes {
		if !naming.IsIdentifier(name) {
			return &tserrors.ConfigError{Option: Prefix + "CUSTOM_TYPES", Value: name, Message: "must be a valid identifier"}
		}
	}
	if c.Workers < 0 {
		return &tserrors.ConfigError{Option: Prefix + "WORKERS", Value: c.Workers, Message: "must not be negative"}
	}
	if c.DefaultName != "" && !naming.IsTypeName(c.DefaultName) {
		return &tserrors.ConfigError{Option: Prefix + "DEFAULT_NAME", Value: c.DefaultName, Message: "must be a valid identifier"}
	}
	if c.MaxInputBytes < 0 {
		return &tserrors.ConfigError{Option: Prefix + "MAX_INPUT_BYTES", Value: c.MaxInputBytes, Message: "must not be negative"}
	}
	if c.MaxInlineSize <= 0 {
		return &tserrors.ConfigError{Option: Prefix + "MAX_INLINE_SIZE", Value: c.MaxInlineSize, Message: "must be positive"}
	}
	return nil
}

// GeneratorOptions returns generator options for these defaults plus any
// extra custom types.
func (c *Config) GeneratorOptions(extraCustomTypes ...string) []generator.Option {
	return []generator.Option{
		generator.WithCustomTypes(c.CustomTypes...),
		generator.WithCustomTypes(extraCustomTypes...),
		generator.WithDefaultName(c.DefaultName),
	}
}

// RunnerOptions returns runner options for these defaults.
func (c *Config) RunnerOptions() []runner.Option {
	return []runner.Option{
		runner.WithWorkers(c.Workers),
		runner.WithValidation(c.Validate),
		runner.WithMaxInputBytes(c.MaxInputBytes),
	}
}

// SplitList splits a comma separated list, trimming blanks and dropping
// empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package mcpserver

import (
	"os"
	"testing"

	"github.com/erraggy/apidoc2ts/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearAPIDOC2TSEnv clears all APIDOC2TS_* env vars to isolate tests from the ambient environment.
func clearAPIDOC2TSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CUSTOM_TYPES", "WORKERS", "DEFAULT_NAME",
		"VALIDATE", "MAX_INPUT_BYTES", "MAX_INLINE_SIZE",
	} {
		t.Setenv(config.Prefix+key, "")
		require.NoError(t, os.Unsetenv(config.Prefix+key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearAPIDOC2TSEnv(t)

	c := loadConfig()
	assert.Equal(t, config.Default(), c)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearAPIDOC2TSEnv(t)
	t.Setenv("APIDOC2TS_CUSTOM_TYPES", "User")
	t.Setenv("APIDOC2TS_MAX_INLINE_SIZE", "64")

	c := loadConfig()
	assert.Equal(t, []string{"User"}, c.CustomTypes)
	assert.Equal(t, int64(64), c.MaxInlineSize)
}

func TestLoadConfig_InvalidFallsBack(t *testing.T) {
	clearAPIDOC2TSEnv(t)
	t.Setenv("APIDOC2TS_WORKERS", "lots")

	c := loadConfig()
	assert.Equal(t, config.Default(), c)
}

// withConfig swaps the active server configuration for the duration of a test.
func withConfig(t *testing.T, mutate func(c *config.Config)) {
	t.Helper()
	saved := cfg
	c := *config.Default()
	mutate(&c)
	cfg = &c
	t.Cleanup(func() { cfg = saved })
}

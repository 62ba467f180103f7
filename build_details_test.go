package apidoc2ts

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	assert.True(t, v == "dev" || strings.HasPrefix(v, "v"), "unexpected version %q", v)
}

func TestCommit(t *testing.T) {
	c := Commit()
	assert.NotEmpty(t, c)
	if c == "unknown" {
		return
	}
	assert.GreaterOrEqual(t, len(c), 7, "short hash expected, got %q", c)
	assert.Equal(t, -1, strings.IndexFunc(c, func(r rune) bool {
		return !strings.ContainsRune("0123456789abcdef", r)
	}), "hex expected, got %q", c)
}

func TestBuildTime(t *testing.T) {
	bt := BuildTime()
	assert.NotEmpty(t, bt)
	if bt != "unknown" {
		assert.Contains(t, bt, "T", "RFC3339 expected, got %q", bt)
	}
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	assert.Equal(t, "apidoc2ts/"+Version(), ua)
	assert.False(t, strings.ContainsAny(ua, " \t\r\n\x00"), "client identifier must be a single token")
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()
	for _, want := range []string{
		"Version: " + Version(),
		"Commit: " + Commit(),
		"Build Time: " + BuildTime(),
		"Go Version: " + GoVersion(),
	} {
		assert.Contains(t, info, want)
	}
}

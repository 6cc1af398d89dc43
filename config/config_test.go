package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	opts := ParseArgs([]string{"serve", "addr=:9000", "title=My Lab", "flag"})
	assert.Equal(t, "serve", opts.Tool)
	assert.Equal(t, ":9000", opts.Params["addr"])
	assert.Equal(t, "My Lab", opts.Params["title"])
	assert.Equal(t, "", opts.Params["flag"])

	assert.Empty(t, ParseArgs(nil).Params)
}

func TestServerDefaults(t *testing.T) {
	cfg, err := ParseArgs([]string{"serve"}).Server()
	require.NoError(t, err)
	assert.Equal(t, DefaultServerConfig(), cfg)
	assert.Equal(t, 1000, cfg.MaxChars)
}

func TestServerOverrides(t *testing.T) {
	cfg, err := ParseArgs([]string{"serve", "addr=127.0.0.1:8080", "max_chars=200", "title=x=y", "log_level=debug"}).Server()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, 200, cfg.MaxChars)
	assert.Equal(t, "x=y", cfg.Title)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestServerInvalid(t *testing.T) {
	for _, arg := range []string{"max_chars=abc", "max_chars=0", "max_chars=-5", "addr=", "log_level=loud", "port=80"} {
		_, err := ParseArgs([]string{"serve", arg}).Server()
		assert.Error(t, err, arg)
	}
}

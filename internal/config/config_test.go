package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Pin the variables Load reads so a value in the runner's environment
	// cannot leak into the assertions. caarlos0/env treats empty as unset.
	for _, key := range []string{"HOST", "PORT", "AWS_REGION", "CACHE_DIR", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:10000", cfg.Addr())
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.NotEmpty(t, cfg.Cache.Dir)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("CACHE_DIR", "/var/cache/tts")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "/var/cache/tts", cfg.Cache.Dir)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

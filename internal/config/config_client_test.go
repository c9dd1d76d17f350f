package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearClientEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CLIENT_SERVER_URL",
		"CLIENT_REQUEST_TIMEOUT",
		"CLIENT_USERNAME",
		"CLIENT_PASSWORD",
		"CLIENT_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestGetClientConfig_Defaults(t *testing.T) {
	clearClientEnv(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, ClientDefaults(), cfg)
}

func TestGetClientConfig_EnvThenFlags(t *testing.T) {
	clearClientEnv(t)
	t.Setenv("CLIENT_SERVER_URL", "http://cases.internal:4000")
	t.Setenv("CLIENT_USERNAME", "env@example.com")
	t.Setenv("CLIENT_PASSWORD", "env-pass")
	t.Setenv("CLIENT_REQUEST_TIMEOUT", "5s")

	cfg, err := GetClientConfig(&ClientConfig{Username: "flag@example.com", Password: "flag-pass"})
	require.NoError(t, err)

	assert.Equal(t, "http://cases.internal:4000", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "flag@example.com", cfg.Username)
	assert.Equal(t, "flag-pass", cfg.Password)
}

func TestGetClientConfig_PartialCredentials(t *testing.T) {
	clearClientEnv(t)

	_, err := GetClientConfig(&ClientConfig{Username: "john@example.com"})
	require.ErrorIs(t, err, ErrInvalidClientConfigs)
}

func TestGetClientConfig_FlagServerKeepsDefaults(t *testing.T) {
	clearClientEnv(t)

	cfg, err := GetClientConfig(&ClientConfig{ServerURL: "http://10.0.0.7:4000"})
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.7:4000", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestGetClientConfig_BadEnv(t *testing.T) {
	clearClientEnv(t)
	t.Setenv("CLIENT_REQUEST_TIMEOUT", "soon")

	_, err := GetClientConfig(nil)
	require.Error(t, err)
}

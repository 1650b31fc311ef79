package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"API_URL", "HTTP_ADDR", "POLL_INTERVAL", "AMQP_QUEUE", "SESSION_SECRET", "SECURE_COOKIES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3001", cfg.APIURL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, "campaign_status", cfg.AMQPQueue)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_URL", "https://mail.example.com")
	t.Setenv("POLL_INTERVAL", "10s")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/dash?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://mail.example.com", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, "postgres://u:p@db/dash?sslmode=disable", cfg.DatabaseURL)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsDefaultSecretWithSecureCookies(t *testing.T) {
	t.Setenv("SECURE_COOKIES", "true")
	t.Setenv("SESSION_SECRET", "")
	os.Unsetenv("SESSION_SECRET")

	_, err := Load()
	require.ErrorIs(t, err, ErrDefaultSessionSecret)

	t.Setenv("SESSION_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.SecureCookies)
}

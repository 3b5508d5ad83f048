package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvOrDefaultAsString(t *testing.T) {
	t.Run("returns default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvOrDefaultAsString("CFG_TEST_UNSET", "fallback"))
	})

	t.Run("returns default when empty", func(t *testing.T) {
		t.Setenv("CFG_TEST_EMPTY", "")
		assert.Equal(t, "fallback", GetEnvOrDefaultAsString("CFG_TEST_EMPTY", "fallback"))
	})

	t.Run("returns env value when set", func(t *testing.T) {
		t.Setenv("CFG_TEST_SET", "value")
		assert.Equal(t, "value", GetEnvOrDefaultAsString("CFG_TEST_SET", "fallback"))
	})
}

func TestGetEnvOrDefaultAsInt(t *testing.T) {
	t.Run("returns default when unset", func(t *testing.T) {
		assert.Equal(t, 42, GetEnvOrDefaultAsInt("CFG_TEST_INT_UNSET", 42))
	})

	t.Run("returns default when not a number", func(t *testing.T) {
		t.Setenv("CFG_TEST_INT_BAD", "abc")
		assert.Equal(t, 42, GetEnvOrDefaultAsInt("CFG_TEST_INT_BAD", 42))
	})

	t.Run("returns parsed value", func(t *testing.T) {
		t.Setenv("CFG_TEST_INT_OK", "7")
		assert.Equal(t, 7, GetEnvOrDefaultAsInt("CFG_TEST_INT_OK", 42))
	})
}

func TestLoadFromConfigFilePath(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadFromConfigFilePath(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "https://mobile-recharge-backend-9hk1.onrender.com/api", cfg.API.BaseURL)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 10*time.Second, cfg.API.HTTPTimeout)
	})

	t.Run("parses yaml and applies second units", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
api:
  base_url: "http://localhost:5000/api"
  http_timeout_seconds: 3
redis:
  addr: "localhost:7777"
  db: 2
  connect_timeout_seconds: 4
logging:
  level: "debug"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadFromConfigFilePath(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.API.HTTPTimeout)
		assert.Equal(t, "localhost:7777", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, 4*time.Second, cfg.Redis.ConnectTimeout)
		assert.Equal(t, "debug", cfg.Logging.LogLevel)
	})

	t.Run("env overrides file values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: \"http://file\"\n"), 0o600))
		t.Setenv("API_BASE_URL", "http://env")

		cfg, err := LoadFromConfigFilePath(path)
		require.NoError(t, err)
		assert.Equal(t, "http://env", cfg.API.BaseURL)
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t- broken"), 0o600))

		_, err := LoadFromConfigFilePath(path)
		assert.Error(t, err)
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Values from file", func(t *testing.T) {
		// Given: a config file overriding every section
		path := writeConfig(t, `
log-level: debug
http-port: "8081"
opponent:
  delay: 250ms
  seed: 7
websocket:
  read-buffer-size: 2048
  write-buffer-size: 4096
  ping-interval: 10s
  send-queue: 4
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ":8081", conf.HTTPAddr())
		assert.Equal(t, 250*time.Millisecond, conf.Opponent.Delay)
		assert.Equal(t, int64(7), conf.Opponent.Seed)
		assert.Equal(t, 2048, conf.WebSocket.ReadBufferSize)
		assert.Equal(t, 4096, conf.WebSocket.WriteBufferSize)
		assert.Equal(t, 10*time.Second, conf.WebSocket.PingInterval)
		assert.Equal(t, 4, conf.WebSocket.SendQueue)
	})

	t.Run("Defaults for missing values", func(t *testing.T) {
		// Given: a config file with a single key
		path := writeConfig(t, "log-level: warn\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, time.Second, conf.Opponent.Delay)
		assert.Equal(t, 1024, conf.WebSocket.ReadBufferSize)
		assert.Equal(t, 30*time.Second, conf.WebSocket.PingInterval)
		assert.Equal(t, 16, conf.WebSocket.SendQueue)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an environment variable for the delay
		path := writeConfig(t, "opponent:\n  delay: 2s\n")
		t.Setenv("OPPONENT_DELAY", "50ms")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, 50*time.Millisecond, conf.Opponent.Delay)
	})

	t.Run("Error on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}

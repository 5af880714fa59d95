package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metamerge/internal/config"
)

func TestSetup(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := Setup(config.LogConfig{Level: "loud"}, "test")
		assert.Error(t, err)
	})

	t.Run("writes to rotating file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.log")
		closer, err := Setup(config.LogConfig{
			Level: "debug",
			File:  &config.FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
		}, "test")
		require.NoError(t, err)

		log.Debug("merge finished", "clusters", 3)
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "merge finished")
		assert.Contains(t, string(data), "clusters=3")
	})

	t.Run("stderr only", func(t *testing.T) {
		closer, err := Setup(config.LogConfig{Level: "warn"}, "test")
		require.NoError(t, err)
		assert.NoError(t, closer.Close())
		assert.Equal(t, log.WarnLevel, log.GetLevel())
	})
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel, "metamerge")

	logger.Debug("hidden")
	logger.Info("shown", "tag", "example.com")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "tag=example.com")
	assert.Contains(t, buf.String(), "metamerge")
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metamerge/internal/domain"
)

func TestCollapseCommand(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })
	chdir(t, t.TempDir())
	t.Setenv("METAMERGE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	t.Run("usage on missing arguments", func(t *testing.T) {
		var stderr bytes.Buffer
		cmd := newRootCmd()
		cmd.SetArgs([]string{"only-one"})
		cmd.SetErr(&stderr)

		err := cmd.Execute()
		assert.ErrorIs(t, err, domain.ErrInvalidArguments)
		assert.Contains(t, stderr.String(), "Usage:")
	})

	t.Run("writes both tables", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "asn.json")
		require.NoError(t, os.WriteFile(in, []byte(`{"name": "a.com", "AS1": {"1.2.3.4": 2}}`+"\n"), 0644))
		prefix := filepath.Join(dir, "out")

		cmd := newRootCmd()
		cmd.SetArgs([]string{"--log-level", "error", in, prefix})
		require.NoError(t, cmd.Execute())

		assert.FileExists(t, prefix+".classC-domain.json")
		assert.FileExists(t, prefix+".domain-classC.json")
	})
}

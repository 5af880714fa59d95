package codec

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metamerge/internal/domain"
)

func TestJSONCodec_Export(t *testing.T) {
	t.Run("compact", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewJSONCodec("").Export([]domain.Cluster{{"d1", "d2"}, {"d3"}}, &buf)
		require.NoError(t, err)
		assert.Equal(t, `[["d1","d2"],["d3"]]`+"\n", buf.String())
	})

	t.Run("nil clusters become empty arrays", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewJSONCodec("").Export([]domain.Cluster{nil, {"a"}}, &buf))
		assert.Equal(t, `[[],["a"]]`+"\n", buf.String())
	})

	t.Run("empty list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewJSONCodec("").Export(nil, &buf))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("indented", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewJSONCodec("  ").Export([]domain.Cluster{{"a"}}, &buf))
		assert.Contains(t, buf.String(), "\n  [\n")
	})

	t.Run("does not escape html characters", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewJSONCodec("").Export([]domain.Cluster{{"a&b"}}, &buf))
		assert.Contains(t, buf.String(), "a&b")
	})
}

func TestJSONCodec_Parse(t *testing.T) {
	c := NewJSONCodec("")
	assert.Equal(t, "json", c.Format())

	t.Run("valid list", func(t *testing.T) {
		clusters, err := c.Parse(strings.NewReader(`[["d1","d2"],["d3"],[]]`))
		require.NoError(t, err)
		assert.Equal(t, []domain.Cluster{{"d1", "d2"}, {"d3"}, {}}, clusters)
	})

	t.Run("null inner cluster becomes empty", func(t *testing.T) {
		clusters, err := c.Parse(strings.NewReader(`[null, ["a"]]`))
		require.NoError(t, err)
		assert.Equal(t, []domain.Cluster{{}, {"a"}}, clusters)
	})

	t.Run("empty list", func(t *testing.T) {
		clusters, err := c.Parse(strings.NewReader(`[]`))
		require.NoError(t, err)
		assert.NotNil(t, clusters)
		assert.Empty(t, clusters)
	})

	for name, raw := range map[string]string{
		"invalid json":     `[["a"`,
		"object":           `{"0": ["a"]}`,
		"non-string entry": `[["a", 1]]`,
		"null":             `null`,
	} {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := c.Parse(strings.NewReader(raw))
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "nope.json"), NewJSONCodec(""))
	assert.ErrorIs(t, err, domain.ErrIO)

	path := filepath.Join(dir, "clusters.json")
	require.NoError(t, os.WriteFile(path, []byte(`[["a.com"]]`), 0644))
	clusters, err := ReadFile(path, NewJSONCodec(""))
	require.NoError(t, err)
	assert.Equal(t, []domain.Cluster{{"a.com"}}, clusters)

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))
	_, err = ReadFile(path, NewJSONCodec(""))
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

type failingExporter struct{}

func (failingExporter) Format() string { return "fail" }

func (failingExporter) Export(_ []domain.Cluster, w io.Writer) error {
	_, _ = w.Write([]byte("[[\"partial"))
	return errors.New("boom")
}

func TestWriteFile(t *testing.T) {
	t.Run("writes and round trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		clusters := []domain.Cluster{{"d1", "d2"}, {"d3"}}
		require.NoError(t, WriteFile(path, clusters, NewJSONCodec("")))

		got, err := ReadFile(path, NewJSONCodec(""))
		require.NoError(t, err)
		assert.Equal(t, clusters, got)
	})

	t.Run("failed export leaves no file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.json")
		err := WriteFile(path, []domain.Cluster{{"a"}}, failingExporter{})
		assert.ErrorIs(t, err, domain.ErrIO)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("failed export keeps previous output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

		require.Error(t, WriteFile(path, nil, failingExporter{}))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "previous", string(data))
	})

	t.Run("missing directory is an I/O failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.json")
		assert.ErrorIs(t, WriteFile(path, nil, NewJSONCodec("")), domain.ErrIO)
	})
}

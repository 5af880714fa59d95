package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"metamerge/internal/domain"
)

// JSONCodec handles cluster list import/export as a JSON array of arrays
type JSONCodec struct {
	indent string
}

// NewJSONCodec creates a JSON codec. An empty indent writes compact JSON.
func NewJSONCodec(indent string) *JSONCodec {
	return &JSONCodec{indent: indent}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse decodes a JSON array of arrays of domain names. The position of each
// inner array is its cluster index; null inner arrays become empty clusters.
func (c *JSONCodec) Parse(r io.Reader) ([]domain.Cluster, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read clusters: %w", domain.ErrIO, err)
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%w: clusters: expected array, got null", domain.ErrMalformedInput)
	}

	var clusters []domain.Cluster
	if err := json.Unmarshal(data, &clusters); err != nil {
		return nil, fmt.Errorf("%w: clusters: %w", domain.ErrMalformedInput, err)
	}

	for i := range clusters {
		if clusters[i] == nil {
			clusters[i] = domain.Cluster{}
		}
	}
	if clusters == nil {
		clusters = []domain.Cluster{}
	}
	return clusters, nil
}

// Export encodes a cluster list. Nil clusters are written as empty arrays.
func (c *JSONCodec) Export(clusters []domain.Cluster, w io.Writer) error {
	out := make([]domain.Cluster, len(clusters))
	for i, cl := range clusters {
		if cl == nil {
			cl = domain.Cluster{}
		}
		out[i] = cl
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if c.indent != "" {
		encoder.SetIndent("", c.indent)
	}

	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

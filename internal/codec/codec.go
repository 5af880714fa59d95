package codec

import (
	"io"

	"metamerge/internal/domain"
)

// Importer decodes a cluster list from some format
type Importer interface {
	Parse(r io.Reader) ([]domain.Cluster, error)
	Format() string
}

// Exporter encodes a cluster list to some format
type Exporter interface {
	Export(clusters []domain.Cluster, w io.Writer) error
	Format() string
}

package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"metamerge/internal/domain"
)

// ReadFile imports a cluster list from path
func ReadFile(path string, imp Importer) ([]domain.Cluster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open clusters: %w", domain.ErrIO, err)
	}
	defer f.Close()

	return imp.Parse(f)
}

// WriteFile exports clusters to path atomically
func WriteFile(path string, clusters []domain.Cluster, exp Exporter) error {
	return WriteAtomic(path, func(w io.Writer) error {
		return exp.Export(clusters, w)
	})
}

// WriteAtomic writes to a temporary file in the target directory and renames
// it into place, so a failed run never leaves partial output behind and an
// existing file is only replaced by complete content.
func WriteAtomic(path string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrIO, path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrIO, path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %w", domain.ErrIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrIO, path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", domain.ErrIO, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename %s: %w", domain.ErrIO, path, err)
	}

	committed = true
	return nil
}

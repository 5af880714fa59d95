package aggregate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"metamerge/internal/codec"
	"metamerge/internal/domain"
)

const (
	blockSuffix  = ".classC-domain.json"
	domainSuffix = ".domain-classC.json"
)

// Outputs returns the two files written for an output prefix
func Outputs(prefix string) (blocks, domains string) {
	return prefix + blockSuffix, prefix + domainSuffix
}

// Run collapses the aggregation file at inPath and writes both tables next to
// outPrefix. Neither file is written if the input cannot be read. Each table
// is written atomically on its own: if the domain table fails to write, the
// block table has already been committed and is left in place.
func Run(ctx context.Context, inPath, outPrefix string) (Stats, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: open asn aggregation: %w", domain.ErrIO, err)
	}
	defer f.Close()

	log.Info("Starting collapse", "input", inPath)
	table, stats, err := Collapse(ctx, f)
	if err != nil {
		return stats, err
	}
	flipped := table.Flip()
	stats.Domains = len(flipped)

	blocksPath, domainsPath := Outputs(outPrefix)
	if err := writeJSON(blocksPath, table); err != nil {
		return stats, err
	}
	if err := writeJSON(domainsPath, flipped); err != nil {
		return stats, err
	}

	log.Info("Collapse complete", "lines", stats.Lines, "skipped", stats.Skipped,
		"bad_counts", stats.BadCounts, "blocks", stats.Blocks, "domains", stats.Domains)
	return stats, nil
}

func writeJSON(path string, v any) error {
	return codec.WriteAtomic(path, func(w io.Writer) error {
		return json.NewEncoder(w).Encode(v)
	})
}

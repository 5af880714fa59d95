// Package aggregate collapses per-domain ASN resolution records into classC
// block tables.
//
// Input is newline-delimited JSON, one record per domain:
//
//	{"name": "example.com", "AS13335": {"1.2.3.4": 7}, "unknown": {...}}
//
// Every object-valued key other than "unknown" is treated as an ASN whose
// members map IP address to resolution count.
package aggregate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"metamerge/internal/domain"
)

const (
	nameKey       = "name"
	unknownASN    = "unknown"
	maxRecordSize = 16 << 20
)

// BlockTable maps a classC block to domain resolution counts
type BlockTable map[string]map[string]int64

// DomainTable maps a domain to classC block resolution counts
type DomainTable map[string]map[string]int64

// Stats describes one collapse run. Skipped counts undecodable lines,
// BadCounts counts IP entries whose count is not an integer.
type Stats struct {
	Lines     int
	Skipped   int
	BadCounts int
	Blocks    int
	Domains   int
}

// Collapse reduces a stream of ASN resolution records into a BlockTable.
// Lines that do not decode are skipped and counted, not fatal.
func Collapse(ctx context.Context, r io.Reader) (BlockTable, Stats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	table := make(BlockTable)
	var stats Stats
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		stats.Lines++

		bad, err := table.add(line)
		if err != nil {
			stats.Skipped++
			log.Debug("Skipping record", "line", stats.Lines, "error", err)
			continue
		}
		if bad > 0 {
			stats.BadCounts += bad
			log.Debug("Skipping non-integer counts", "line", stats.Lines, "entries", bad)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: read asn aggregation: %w", domain.ErrIO, err)
	}

	stats.Blocks = len(table)
	return table, stats, nil
}

// add folds one record into the table and returns how many IP entries were
// dropped for not carrying an integer count
func (t BlockTable) add(line []byte) (int, error) {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(line, &record); err != nil {
		return 0, err
	}

	var name string
	if raw, ok := record[nameKey]; ok {
		if err := json.Unmarshal(raw, &name); err != nil {
			return 0, fmt.Errorf("name: %w", err)
		}
	}

	bad := 0
	for asn, raw := range record {
		if asn == nameKey || asn == unknownASN {
			continue
		}
		// non-object values are not ASN memberships
		var ips map[string]json.RawMessage
		if err := json.Unmarshal(raw, &ips); err != nil || ips == nil {
			continue
		}
		for ip, rawCount := range ips {
			if ip == "empty" || ip == "undefined" || strings.Contains(ip, ":") {
				continue
			}
			var count *int64
			if err := json.Unmarshal(rawCount, &count); err != nil || count == nil {
				bad++
				continue
			}
			block := domain.ClassC(ip)
			if t[block] == nil {
				t[block] = make(map[string]int64)
			}
			t[block][name] += *count
		}
	}
	return bad, nil
}

// Flip inverts a BlockTable into per-domain block counts
func (t BlockTable) Flip() DomainTable {
	out := make(DomainTable)
	for block, domains := range t {
		for name, count := range domains {
			if out[name] == nil {
				out[name] = make(map[string]int64)
			}
			out[name][block] += count
		}
	}
	return out
}

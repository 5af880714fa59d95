package loader

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"metamerge/internal/domain"
)

// DefaultMaxLineBytes bounds a single metadata line
const DefaultMaxLineBytes = 1 << 20

// MetadataOptions configures the metadata stream loader
type MetadataOptions struct {
	MaxLineBytes int
}

// LoadMetadataFile streams a newline-delimited metadata file into an index
func LoadMetadataFile(ctx context.Context, path string, opts MetadataOptions) (domain.MetadataIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open metadata: %w", domain.ErrIO, err)
	}
	defer f.Close()

	return LoadMetadataIndex(ctx, f, opts)
}

// LoadMetadataIndex builds a classC -> metadata index from lines of the form
// [ip, value], where value is a string or an array of strings. Later lines
// for the same block overwrite earlier ones. Any undecodable line aborts the
// load and no partial index is returned.
func LoadMetadataIndex(ctx context.Context, r io.Reader, opts MetadataOptions) (domain.MetadataIndex, error) {
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)

	index := make(domain.MetadataIndex)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		ip, value, err := decodeMetadataLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: metadata line %d: %w", domain.ErrMalformedInput, lineNo, err)
		}
		index[domain.ClassC(ip)] = value
	}
	if err := scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, fmt.Errorf("%w: metadata line %d exceeds %d bytes", domain.ErrMalformedInput, lineNo+1, maxLine)
		}
		return nil, fmt.Errorf("%w: read metadata: %w", domain.ErrIO, err)
	}

	return index, nil
}

func decodeMetadataLine(line []byte) (string, domain.MetadataValue, error) {
	var entry []json.RawMessage
	if err := json.Unmarshal(line, &entry); err != nil {
		return "", nil, err
	}
	if len(entry) != 2 {
		return "", nil, fmt.Errorf("expected [ip, value], got %d elements", len(entry))
	}

	var ip string
	if err := json.Unmarshal(entry[0], &ip); err != nil || isNull(entry[0]) {
		return "", nil, fmt.Errorf("ip must be a string")
	}

	if isNull(entry[1]) {
		return "", nil, fmt.Errorf("value must be a string or array of strings, got null")
	}
	var value domain.MetadataValue
	if err := json.Unmarshal(entry[1], &value); err != nil {
		return "", nil, err
	}
	return ip, value, nil
}

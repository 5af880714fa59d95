package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"metamerge/internal/domain"
)

// LoadMembership reads a JSON object mapping cluster index to IP list.
// Index range is checked against the cluster list by Membership.Validate.
func LoadMembership(path string) (domain.Membership, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read cluster ips: %w", domain.ErrIO, err)
	}
	return ParseMembership(data)
}

// ParseMembership decodes a cluster membership document
func ParseMembership(data []byte) (domain.Membership, error) {
	if isNull(data) {
		return nil, fmt.Errorf("%w: cluster ips: expected object, got null", domain.ErrMalformedInput)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: cluster ips: %w", domain.ErrMalformedInput, err)
	}

	membership := make(domain.Membership, len(raw))
	for key, ips := range raw {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || strconv.Itoa(idx) != key {
			return nil, fmt.Errorf("%w: cluster ips: key %q is not a cluster index", domain.ErrMalformedInput, key)
		}
		membership[idx] = ips
	}

	return membership, nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

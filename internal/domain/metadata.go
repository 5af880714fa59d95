package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MetadataValue holds the raw metadata observed for a network block.
// On the wire it is either a single string or an array of strings.
type MetadataValue []string

// UnmarshalJSON accepts a JSON string or an array of strings
func (v *MetadataValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("metadata value: empty")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("metadata value: %w", err)
		}
		*v = MetadataValue{s}
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("metadata value: expected array of strings: %w", err)
		}
		if list == nil {
			list = []string{}
		}
		*v = MetadataValue(list)
		return nil
	default:
		return fmt.Errorf("metadata value: expected string or array of strings, got %s", truncate(data, 32))
	}
}

// MetadataIndex maps a classC key to the last metadata value loaded for it
type MetadataIndex map[string]MetadataValue

// Lookup returns the metadata recorded for the block containing ip
func (m MetadataIndex) Lookup(ip string) (MetadataValue, bool) {
	v, ok := m[ClassC(ip)]
	return v, ok
}

// ClassC returns the first three dot-separated components of an IPv4 address.
// Inputs with fewer than three components are returned unchanged.
func ClassC(ip string) string {
	ip = strings.TrimSpace(ip)
	n := 0
	for i := 0; i < len(ip); i++ {
		if ip[i] == '.' {
			n++
			if n == 3 {
				return ip[:i]
			}
		}
	}
	return ip
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

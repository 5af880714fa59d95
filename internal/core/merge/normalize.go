// Package merge correlates clusters with network-block metadata and merges
// clusters that share a confident dominant tag.
package merge

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"metamerge/internal/domain"
)

// hostLabelMinLen is the length a leading hostname label must exceed to be
// treated as a per-host identifier and stripped
const hostLabelMinLen = 5

// Cleanup canonicalises one raw metadata string into a tag.
// It returns false when the input carries no signal.
//
// Free text (anything with an interior space, such as a WHOIS organisation)
// is returned lowercased. Hostnames with more than two labels whose first
// label is longer than five characters lose that label, so
// node-8f3a.example.com becomes example.com.
//
// NFKC runs first, so compatibility spaces such as NBSP become plain spaces
// and mark the value as free text.
func Cleanup(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(norm.NFKC.String(raw)))
	if s == "" {
		return "", false
	}
	if strings.Contains(s, " ") {
		return s, true
	}

	labels := strings.Split(s, ".")
	if len(labels) > 2 && utf8.RuneCountInString(labels[0]) > hostLabelMinLen {
		return strings.Join(labels[1:], "."), true
	}
	return s, true
}

// CleanupAll flattens metadata values into tags, dropping entries without signal
func CleanupAll(values ...domain.MetadataValue) []string {
	var tags []string
	for _, v := range values {
		for _, raw := range v {
			if tag, ok := Cleanup(raw); ok {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

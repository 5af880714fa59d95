package domain

import (
	"fmt"
	"slices"
)

// Cluster is an ordered list of related domain names
type Cluster []string

// Membership maps a cluster index to the IP addresses observed for it.
// IP order is preserved from the source file; the mode tie-break depends on it.
type Membership map[int][]string

// IPs returns the IPs recorded for a cluster, or nil if it has no evidence
func (m Membership) IPs(idx int) []string {
	return m[idx]
}

// Indices returns the cluster indices with at least one IP, ascending
func (m Membership) Indices() []int {
	idxs := make([]int, 0, len(m))
	for idx, ips := range m {
		if len(ips) > 0 {
			idxs = append(idxs, idx)
		}
	}
	slices.Sort(idxs)
	return idxs
}

// Validate checks that every index refers to a cluster in a list of n clusters
func (m Membership) Validate(n int) error {
	for idx := range m {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: cluster ips: cluster %d out of range (have %d clusters)",
				ErrMalformedInput, idx, n)
		}
	}
	return nil
}

// DomainCount returns the total number of domains across all clusters
func DomainCount(clusters []Cluster) int {
	n := 0
	for _, c := range clusters {
		n += len(c)
	}
	return n
}

// MergeGroup is a set of cluster indices sharing a dominant tag above threshold
type MergeGroup struct {
	Tag     string `json:"tag"`
	Members []int  `json:"members"`
}

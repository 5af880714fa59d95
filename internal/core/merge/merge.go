package merge

import (
	"slices"

	"metamerge/internal/domain"
)

// Group collects the clusters whose signal strictly exceeds threshold by
// dominant tag. Groups are ordered by their lowest member index and members
// are ascending. Signals without a tag never group.
func Group(signals []domain.Signal, threshold float64) []domain.MergeGroup {
	ordered := slices.Clone(signals)
	slices.SortStableFunc(ordered, func(a, b domain.Signal) int { return a.Index - b.Index })

	var groups []domain.MergeGroup
	byTag := make(map[string]int)
	for _, s := range ordered {
		if !s.Exceeds(threshold) {
			continue
		}
		pos, ok := byTag[s.Tag]
		if !ok {
			pos = len(groups)
			byTag[s.Tag] = pos
			groups = append(groups, domain.MergeGroup{Tag: s.Tag})
		}
		groups[pos].Members = append(groups[pos].Members, s.Index)
	}

	return groups
}

// Merge coalesces clusters that share a dominant tag above threshold.
// The result lists one cluster per merge group, in group order, followed by
// every ungrouped cluster in its original order. Every input domain appears
// exactly once in the output.
func Merge(clusters []domain.Cluster, signals []domain.Signal, threshold float64) ([]domain.Cluster, []domain.MergeGroup) {
	groups := Group(signals, threshold)

	pool := make(map[int]struct{}, len(clusters))
	for i := range clusters {
		pool[i] = struct{}{}
	}

	out := make([]domain.Cluster, 0, len(clusters))
	kept := groups[:0]
	for _, g := range groups {
		merged := domain.Cluster{}
		members := g.Members[:0]
		for _, idx := range g.Members {
			if _, ok := pool[idx]; !ok {
				continue
			}
			delete(pool, idx)
			members = append(members, idx)
			merged = append(merged, clusters[idx]...)
		}
		if len(members) == 0 {
			continue
		}
		g.Members = members
		kept = append(kept, g)
		out = append(out, merged)
	}

	for i, c := range clusters {
		if _, ok := pool[i]; ok {
			out = append(out, c)
		}
	}

	return out, kept
}

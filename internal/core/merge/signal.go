package merge

import "metamerge/internal/domain"

// ComputeSignals derives the dominant tag and confidence of every cluster with
// at least one IP, in ascending cluster order. The confidence denominator is
// the cluster's full IP count, including IPs whose block has no metadata.
func ComputeSignals(membership domain.Membership, index domain.MetadataIndex) []domain.Signal {
	idxs := membership.Indices()
	signals := make([]domain.Signal, 0, len(idxs))

	for _, idx := range idxs {
		signals = append(signals, signalFor(idx, membership.IPs(idx), index))
	}

	return signals
}

// signalFor tags every IP of one cluster in source order. An IP contributes
// each distinct tag once, so Count never exceeds the IP count.
func signalFor(idx int, ips []string, index domain.MetadataIndex) domain.Signal {
	var tags []string
	for _, ip := range ips {
		v, ok := index.Lookup(ip)
		if !ok {
			continue
		}
		tags = appendDistinct(tags, CleanupAll(v))
	}

	signal := domain.Signal{Index: idx, Total: len(ips)}
	tag, count, ok := MostFrequent(tags)
	if !ok {
		return signal
	}

	signal.Tag = tag
	signal.HasTag = true
	signal.Count = count
	signal.Confidence = float64(count) / float64(len(ips))
	return signal
}

func appendDistinct(dst, tags []string) []string {
	for i, t := range tags {
		seen := false
		for _, prev := range tags[:i] {
			if prev == t {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, t)
		}
	}
	return dst
}

package merge

// MostFrequent returns the most frequent tag and its count.
// On ties the tag that first reached the maximum count during a left-to-right
// scan wins, so the result depends on input order. ok is false for empty input.
func MostFrequent(tags []string) (tag string, count int, ok bool) {
	counts := make(map[string]int, len(tags))
	for _, t := range tags {
		counts[t]++
		if counts[t] > count {
			tag, count = t, counts[t]
		}
	}
	return tag, count, count > 0
}

package domain

// Signal is the dominant metadata tag of a cluster and its support.
// Confidence is Count divided by Total, the cluster's full IP count, so IPs
// without usable metadata dilute it.
type Signal struct {
	Index      int     `json:"index"`
	Tag        string  `json:"tag,omitempty"`
	HasTag     bool    `json:"has_tag"`
	Count      int     `json:"count"`
	Total      int     `json:"total"`
	Confidence float64 `json:"confidence"`
}

// Exceeds reports whether the signal is eligible to drive a merge
func (s Signal) Exceeds(threshold float64) bool {
	return s.HasTag && s.Confidence > threshold
}

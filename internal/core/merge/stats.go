package merge

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"metamerge/internal/domain"
)

const (
	histogramWidth = 40
	quantizeEps    = 1e-9
)

type bucket struct {
	magnitude int
	step      int
}

// Histogram is a log-linear quantization of non-negative values: each power
// of Base is split into Steps linear buckets, and zero has its own bucket.
type Histogram struct {
	Base  int
	Steps int

	zero    int
	total   int
	buckets map[bucket]int
}

// NewHistogram creates an empty histogram
func NewHistogram(base, steps int) *Histogram {
	if base < 2 {
		base = 10
	}
	if steps < 1 {
		steps = 10
	}
	return &Histogram{Base: base, Steps: steps, buckets: make(map[bucket]int)}
}

// Add records one value. Negative, NaN and infinite values are ignored.
func (h *Histogram) Add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return
	}
	h.total++
	if v == 0 {
		h.zero++
		return
	}

	base := float64(h.Base)
	m := int(math.Floor(math.Log(v)/math.Log(base) + quantizeEps))
	width := math.Pow(base, float64(m+1)) / float64(h.Steps)
	k := int(math.Floor(v/width + quantizeEps))
	h.buckets[bucket{magnitude: m, step: k}]++
}

// Count returns the number of recorded values
func (h *Histogram) Count() int {
	return h.total
}

func (h *Histogram) lower(b bucket) float64 {
	width := math.Pow(float64(h.Base), float64(b.magnitude+1)) / float64(h.Steps)
	return float64(b.step) * width
}

// WriteTo renders the histogram as a text distribution table
func (h *Histogram) WriteTo(w io.Writer) (int64, error) {
	type row struct {
		value float64
		count int
	}

	rows := make([]row, 0, len(h.buckets)+1)
	if h.zero > 0 {
		rows = append(rows, row{0, h.zero})
	}
	for b, n := range h.buckets {
		rows = append(rows, row{h.lower(b), n})
	}
	slices.SortFunc(rows, func(a, b row) int {
		switch {
		case a.value < b.value:
			return -1
		case a.value > b.value:
			return 1
		}
		return 0
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "%16s  %s %s\n", "value", centered("Distribution", histogramWidth), "count")
	for _, r := range rows {
		bar := 0
		if h.total > 0 {
			bar = int(math.Round(float64(r.count) * histogramWidth / float64(h.total)))
		}
		fmt.Fprintf(&sb, "%16s |%-*s %d\n",
			strconv.FormatFloat(r.value, 'g', 6, 64), histogramWidth, strings.Repeat("@", bar), r.count)
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func centered(title string, width int) string {
	pad := width - len(title) - 2
	if pad < 0 {
		return title
	}
	left := strings.Repeat("-", pad/2)
	right := strings.Repeat("-", pad-pad/2)
	return left + " " + title + " " + right
}

// ConfidenceHistogram quantizes the confidence of every signal
func ConfidenceHistogram(signals []domain.Signal, base, steps int) *Histogram {
	h := NewHistogram(base, steps)
	for _, s := range signals {
		h.Add(s.Confidence)
	}
	return h
}

package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseThreshold parses a merge threshold, which must be a finite number in [0,1]
func ParseThreshold(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidThreshold, s)
	}
	if err := ValidateThreshold(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ValidateThreshold checks that v is a finite number in [0,1]
func ValidateThreshold(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidThreshold, v)
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %v is outside [0,1]", ErrInvalidThreshold, v)
	}
	return nil
}

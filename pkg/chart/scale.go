package chart

import (
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
)

// Scale maps a trip count to a spoke length in pixels by linear
// interpolation: a count of zero maps to MinLen exactly, MaxValue maps to
// MaxLen exactly.
type Scale struct {
	MinLen   float64
	MaxLen   float64
	MaxValue int
}

// NewScale builds a scale for the given bounds and dataset maximum.
// It returns an error with code DEGENERATE_DATASET when maxValue is zero,
// since the interpolation is undefined there.
func NewScale(minLen, maxLen float64, maxValue int) (Scale, error) {
	if maxValue == 0 {
		return Scale{}, errors.New(errors.ErrCodeDegenerateDataset, "all trip counts are zero; spoke lengths are undefined")
	}
	return Scale{MinLen: minLen, MaxLen: maxLen, MaxValue: maxValue}, nil
}

// Length returns the spoke length for count. The mapping is monotonically
// non-decreasing; counts above MaxValue extrapolate past MaxLen, which is
// how reference rings one increment beyond the busiest station get their
// radius.
func (s Scale) Length(count int) float64 {
	frac := float64(count) / float64(s.MaxValue)
	return s.MinLen + (s.MaxLen-s.MinLen)*frac
}

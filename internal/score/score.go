package score

import (
	"math"
	"strconv"
	"strings"
)

// Compute maps the four sub-scores to an overall score on [0, 10],
// rounded to one decimal place. Weights: taste 45%, head 25%,
// coldness 20%, presentation 10%. Two guardrails: a pint with taste
// at 4 or below cannot score above 5.0, and a head at 3 or below
// costs a flat 0.7 (applied after the cap, so it can undercut it).
func Compute(presentation, coldness, head, taste int) float64 {
	s := 0.45*float64(taste) + 0.25*float64(head) + 0.20*float64(coldness) + 0.10*float64(presentation)
	if taste <= 4 {
		s = math.Min(s, 5.0)
	}
	if head <= 3 {
		s -= 0.7
	}
	s = math.Max(0.0, math.Min(10.0, s))
	return math.Round(s*10) / 10
}

// ClampInt parses a form value as an integer and clamps it to
// [lo, hi]. Anything unparseable falls back to lo; this never fails.
func ClampInt(value string, lo, hi int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

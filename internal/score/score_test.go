package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePerfectPint(t *testing.T) {
	assert.Equal(t, 10.0, Compute(10, 10, 10, 10))
}

func TestComputeTasteCap(t *testing.T) {
	// Uncapped this would be 0.25*10 + 0.20*10 + 0.10*10 = 6.5.
	assert.Equal(t, 5.0, Compute(10, 10, 10, 0))
	assert.Equal(t, 5.0, Compute(10, 10, 10, 4))
}

func TestComputeHeadPenalty(t *testing.T) {
	// 0.45*10 = 4.5, head penalty takes it to 3.8.
	assert.Equal(t, 3.8, Compute(0, 0, 0, 10))
}

func TestComputeHeadPenaltyUndercutsCap(t *testing.T) {
	// Raw 5.55 is capped to 5.0 first, then the head penalty lands.
	assert.Equal(t, 4.3, Compute(10, 10, 3, 4))
}

func TestComputeFloor(t *testing.T) {
	assert.Equal(t, 0.0, Compute(0, 0, 0, 0))
}

func TestComputeAlwaysInRange(t *testing.T) {
	for p := 0; p <= 10; p++ {
		for c := 0; c <= 10; c++ {
			for h := 0; h <= 10; h++ {
				for ta := 0; ta <= 10; ta++ {
					s := Compute(p, c, h, ta)
					assert.GreaterOrEqual(t, s, 0.0)
					assert.LessOrEqual(t, s, 10.0)
					// One decimal place.
					assert.Equal(t, math.Round(s*10)/10, s)
				}
			}
		}
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{"0", 0},
		{"10", 10},
		{"11", 10},
		{"-3", 0},
		{" 5 ", 5},
		{"", 0},
		{"abc", 0},
		{"3.5", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampInt(tt.in, 0, 10), "input %q", tt.in)
	}
}

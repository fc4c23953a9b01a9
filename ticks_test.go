package recoplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreciseTicks(t *testing.T) {
	tests := []struct {
		min, max float64
		n        int
		labels   []string
	}{
		{0, 100, 5, []string{"0", "20", "40", "60", "80", "100"}},
		{0, 10, 4, []string{"0", "3", "6", "9"}},
		{-1, 1, 5, []string{"-1", "-0.5", "0", "0.5", "1"}},
		{-100, -10, 5, []string{"-100", "-80", "-60", "-40", "-20"}},
		{-0.5, -0.01, 5, []string{"-0.5", "-0.4", "-0.3", "-0.2", "-0.1"}},
	}

	for _, tt := range tests {
		ticks := PreciseTicks{NSuggestedTicks: tt.n}.Ticks(tt.min, tt.max)

		var labels []string
		for _, tick := range ticks {
			assert.GreaterOrEqual(t, tick.Value, tt.min)
			assert.LessOrEqual(t, tick.Value, tt.max)
			if tick.Label != "" {
				labels = append(labels, tick.Label)
			}
		}
		assert.Equal(t, tt.labels, labels, "range [%g,%g]", tt.min, tt.max)
		assert.Greater(t, len(ticks), len(labels))
	}
}

func TestPreciseTicksIllegalRange(t *testing.T) {
	assert.Panics(t, func() { PreciseTicks{}.Ticks(1, 1) })
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.0, round(-0.0, 2))
	assert.Equal(t, 3.0, round(3, 2))
	assert.Equal(t, 1.23, round(1.234, 2))
	assert.Equal(t, -1.24, round(-1.2351, 2))
}

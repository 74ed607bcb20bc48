package lshtrie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalParams(t *testing.T) {
	t.Run("Bounds", func(t *testing.T) {
		thresholds := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
		numPerms := []int{2, 16, 128, 256}
		weights := [][2]float64{{0.5, 0.5}, {0.2, 0.8}, {0.9, 0.1}}

		for _, th := range thresholds {
			for _, np := range numPerms {
				for _, w := range weights {
					name := fmt.Sprintf("t=%.2f/h=%d/w=%.1f", th, np, w[0])
					t.Run(name, func(t *testing.T) {
						b, r := optimalParams(th, np, w[0], w[1])
						assert.GreaterOrEqual(t, b, 1)
						assert.GreaterOrEqual(t, r, 1)
						assert.LessOrEqual(t, b*r, np)
					})
				}
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		b1, r1 := optimalParams(0.8, 128, 0.5, 0.5)
		b2, r2 := optimalParams(0.8, 128, 0.5, 0.5)

		assert.Equal(t, b1, b2)
		assert.Equal(t, r1, r2)
	})

	t.Run("ThresholdShape", func(t *testing.T) {
		// Low thresholds favor many bands with few rows (easier to match);
		// high thresholds favor fewer bands with more rows.
		_, rLow := optimalParams(0.2, 128, 0.5, 0.5)
		_, rHigh := optimalParams(0.95, 128, 0.5, 0.5)

		assert.Less(t, rLow, rHigh)
	})
}

func TestIntegrate(t *testing.T) {
	// Integral of the identity over [0, 1] is 1/2.
	area := integrate(func(x float64) float64 { return x }, 0.0, 1.0)
	assert.InDelta(t, 0.5, area, 1e-3)

	// Constant function.
	area = integrate(func(x float64) float64 { return 2.0 }, 0.0, 0.5)
	assert.InDelta(t, 1.0, area, 1e-3)
}

func TestProbabilities(t *testing.T) {
	// Probabilities integrate a function bounded by [0, 1], so the mass over
	// an interval is bounded by the interval length.
	fp := falsePositiveProbability(0.8, 4, 8)
	assert.GreaterOrEqual(t, fp, 0.0)
	assert.LessOrEqual(t, fp, 0.8+1e-9)

	fn := falseNegativeProbability(0.8, 4, 8)
	assert.GreaterOrEqual(t, fn, 0.0)
	assert.LessOrEqual(t, fn, 0.2+1e-9)

	// More bands at fixed rows increase collision probability, trading
	// false negatives for false positives.
	fpMore := falsePositiveProbability(0.8, 8, 8)
	fnMore := falseNegativeProbability(0.8, 8, 8)
	require.Greater(t, fpMore, fp)
	require.Less(t, fnMore, fn)
}

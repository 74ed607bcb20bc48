package lshtrie

import "math"

// Params are explicit LSH parameters: the number of bands and the number of
// rows per band. Supplying them bypasses the threshold-based optimization.
type Params struct {
	B int // number of bands
	R int // rows per band
}

// integrationPrecision is the step width of the midpoint rule used by the
// probability integrals.
const integrationPrecision = 0.001

// integrate approximates the integral of f over [a, b] with the midpoint
// rule at fixed precision, keeping the optimization deterministic.
func integrate(f func(float64) float64, a, b float64) float64 {
	area := 0.0
	for x := a + 0.5*integrationPrecision; x < b; x += integrationPrecision {
		area += f(x) * integrationPrecision
	}

	return area
}

// falsePositiveProbability is the probability mass of pairs below the
// threshold that still collide in at least one band.
func falsePositiveProbability(threshold float64, b, r int) float64 {
	return integrate(func(s float64) float64 {
		return 1 - math.Pow(1-math.Pow(s, float64(r)), float64(b))
	}, 0.0, threshold)
}

// falseNegativeProbability is the probability mass of pairs above the
// threshold that collide in no band.
func falseNegativeProbability(threshold float64, b, r int) float64 {
	return integrate(func(s float64) float64 {
		return math.Pow(1-math.Pow(s, float64(r)), float64(b))
	}, threshold, 1.0)
}

// optimalParams picks (b, r) with b*r <= numPerm minimizing the weighted sum
// of false-positive and false-negative probability for the given threshold.
// It is a pure function of its inputs.
func optimalParams(threshold float64, numPerm int, fpWeight, fnWeight float64) (int, int) {
	minError := math.Inf(1)
	optB, optR := 1, 1

	for b := 1; b <= numPerm; b++ {
		maxR := numPerm / b
		for r := 1; r <= maxR; r++ {
			fp := falsePositiveProbability(threshold, b, r)
			fn := falseNegativeProbability(threshold, b, r)

			err := fp*fpWeight + fn*fnWeight
			if err < minError {
				minError = err
				optB, optR = b, r
			}
		}
	}

	return optB, optR
}

package filter

import "math"

// GaussianKernel returns normalized 1D Gaussian weights with sigma = radius,
// truncated at three sigma on each side. A radius that is not positive
// yields the single tap [1].
func GaussianKernel(radius float64) []float32 {
	if !(radius > 0) {
		return []float32{1}
	}
	half := int(math.Ceil(3 * radius))
	weights := make([]float64, 2*half+1)
	var total float64
	for i := range weights {
		d := float64(i - half)
		weights[i] = math.Exp(-d * d / (2 * radius * radius))
		total += weights[i]
	}
	taps := make([]float32, len(weights))
	for i, w := range weights {
		taps[i] = float32(w / total)
	}
	return taps
}

package util

import (
	"math/rand"

	"github.com/matt-g-everett/ledtween/easing"
)

// RandomiseSaturation returns a value drawn uniformly from [min, max).
func RandomiseSaturation(rng *rand.Rand, min float64, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// GenerateLut builds a table of length samples that rises through fn over
// the first half and mirrors it back down over the second.
func GenerateLut(length int, fn easing.Func) []float64 {
	if length < 2 {
		return make([]float64, length)
	}
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := fn(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}

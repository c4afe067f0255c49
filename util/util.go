package util

import (
	"github.com/matt-g-everett/ledmotion/motion"
)

// GenerateLut builds a table that rises through fn over the first half and
// falls back over the second half. It returns nil for non-positive lengths.
func GenerateLut(length int, fn motion.EasingFunc) []float64 {
	if length <= 0 {
		return nil
	}
	lut := make([]float64, length)
	if length < 2 {
		for i := range lut {
			lut[i] = fn(1)
		}
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i <= j; i, j = i+1, j-1 {
		value := fn(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}

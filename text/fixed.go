package text

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// maxFixed is the largest width handed to the line wrapper.
const maxFixed = fixed.Int26_6(math.MaxInt32)

// floatToFixed converts a pixel value to 26.6 fixed point, truncating.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// floatToFixedCeil converts a pixel value to 26.6 fixed point, rounding up
// so that a width measured from fixed advances fits itself again.
func floatToFixedCeil(v float32) fixed.Int26_6 {
	f := math.Ceil(float64(v) * 64)
	if f >= float64(maxFixed) {
		return maxFixed
	}
	return fixed.Int26_6(f)
}

// fixedToFloat converts a 26.6 fixed point value to pixels.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

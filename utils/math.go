package utils

import (
	"math"
)

// POW is x^pp with the small integer powers unrolled, used in the inner loops
// of the grading series where math.Pow dominates the profile.
func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return
}

// GeometricSum is a + a*k + ... + a*k^(n-1)
func GeometricSum(a, k float64, n int) float64 {
	if k == 1 {
		return a * float64(n)
	}
	return a * (1 - POW(k, n)) / (1 - k)
}

// RelErr is |a-b| scaled by |b|, falling back to the absolute difference near zero
func RelErr(a, b float64) float64 {
	if math.Abs(b) < 1.e-12 {
		return math.Abs(a - b)
	}
	return math.Abs(a-b) / math.Abs(b)
}

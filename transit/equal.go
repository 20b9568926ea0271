package transit

import (
	"fmt"
	"math"
)

// Tolerances used by every IsEqualForTesting method.
const (
	PointsEqualEpsilon = 1e-6
	WeightEqualEpsilon = 1e-2
)

// Point is a 2-D point in map projection coordinates.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// AlmostEqualPoints reports whether both coordinates differ by at most PointsEqualEpsilon.
func AlmostEqualPoints(a, b Point) bool {
	return almostEqualAbs(a.X, b.X, PointsEqualEpsilon) && almostEqualAbs(a.Y, b.Y, PointsEqualEpsilon)
}

// AlmostEqualWeights reports whether two weights differ by at most WeightEqualEpsilon.
func AlmostEqualWeights(a, b Weight) bool {
	return almostEqualAbs(a, b, WeightEqualEpsilon)
}

// Equal infinities and two NaNs compare equal so that every value equals itself.
func almostEqualAbs(a, b, eps float64) bool {
	if a == b || (math.IsNaN(a) && math.IsNaN(b)) {
		return true
	}
	return math.Abs(a-b) <= eps
}

func almostEqualPolylines(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !AlmostEqualPoints(a[i], b[i]) {
			return false
		}
	}
	return true
}

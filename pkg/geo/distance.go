package geo

import (
	"math"

	"github.com/golang/geo/r2"
)

// CalculateEuclideanDistance. straight-line distance between a and b
func CalculateEuclideanDistance(a, b r2.Point) float64 {
	return a.Sub(b).Norm()
}

// CalculateManhattanDistance. taxicab distance |dx| + |dy| between a and b
func CalculateManhattanDistance(a, b r2.Point) float64 {
	d := a.Sub(b)
	return math.Abs(d.X) + math.Abs(d.Y)
}

// Lerp returns the point at fraction t of the segment a->b.
func Lerp(a, b r2.Point, t float64) r2.Point {
	return a.Add(b.Sub(a).Mul(t))
}

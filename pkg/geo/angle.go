package geo

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// NormalizeAngle maps an angle in radians to (-pi, pi].
func NormalizeAngle(rad float64) float64 {
	return s1.Angle(rad).Normalized().Radians()
}

// Rotate rotates p counter-clockwise around the origin by rad radians.
func Rotate(p r2.Point, rad float64) r2.Point {
	sin, cos := math.Sincos(rad)
	return r2.Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

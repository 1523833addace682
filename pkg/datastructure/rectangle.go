package datastructure

import (
	"math"

	"github.com/golang/geo/r2"
)

// Rectangle is an axis-aligned box described by its center, its length (along x)
// and its width (along y). Obstacles and the goal region use it.
type Rectangle struct {
	CenterX float64 `json:"center_x" mapstructure:"center_x"`
	CenterY float64 `json:"center_y" mapstructure:"center_y"`
	Length  float64 `json:"length" mapstructure:"length" validate:"gt=0"`
	Width   float64 `json:"width" mapstructure:"width" validate:"gt=0"`
}

func NewRectangle(centerX, centerY, length, width float64) Rectangle {
	return Rectangle{CenterX: centerX, CenterY: centerY, Length: length, Width: width}
}

func (r Rectangle) Center() r2.Point {
	return r2.Point{X: r.CenterX, Y: r.CenterY}
}

func (r Rectangle) GetLength() float64 {
	return r.Length
}

func (r Rectangle) GetWidth() float64 {
	return r.Width
}

// Rect converts the rectangle to a closed r2.Rect.
func (r Rectangle) Rect() r2.Rect {
	return r2.RectFromCenterSize(r.Center(), r2.Point{X: r.Length, Y: r.Width})
}

// ContainsPoint reports whether p lies in the closed rectangle.
func (r Rectangle) ContainsPoint(p r2.Point) bool {
	return r.Rect().ContainsPoint(p)
}

// StrictlyContainsCenter reports |dx| < L/2 && |dy| < W/2 for the offset between p and the center.
func (r Rectangle) StrictlyContainsCenter(p r2.Point) bool {
	dx := r.CenterX - p.X
	dy := r.CenterY - p.Y
	return math.Abs(dx) < r.Length/2 && math.Abs(dy) < r.Width/2
}

// Bounds returns the min and max corners, the layout tidwall/rtree expects.
func (r Rectangle) Bounds() (min, max [2]float64) {
	rect := r.Rect()
	return [2]float64{rect.X.Lo, rect.Y.Lo}, [2]float64{rect.X.Hi, rect.Y.Hi}
}

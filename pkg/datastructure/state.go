package datastructure

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

const (
	EPS = 1e-6
)

// State is a point-in-time vehicle configuration.
type State struct {
	Position    r2.Point
	Orientation float64 // radians
	Velocity    float64
	TimeStep    int
}

func NewState(x, y, orientation, velocity float64, timeStep int) State {
	return State{
		Position:    r2.Point{X: x, Y: y},
		Orientation: orientation,
		Velocity:    velocity,
		TimeStep:    timeStep,
	}
}

func (s State) GetX() float64 {
	return s.Position.X
}

func (s State) GetY() float64 {
	return s.Position.Y
}

func (s State) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", s.Position.X, s.Position.Y)
}

// equal operator
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}

// less than operator
func Lt(a, b float64) bool {
	return a+EPS < b
}

// less than or equal operator
func Le(a, b float64) bool {
	return a <= b+EPS
}

// FlattenSegments joins trajectory segments into one state sequence. Every segment after the
// first starts with the terminal state of its predecessor, that duplicate is skipped.
func FlattenSegments(segments [][]State) []State {
	n := 0
	for _, seg := range segments {
		n += len(seg)
	}
	path := make([]State, 0, n)
	for i, seg := range segments {
		if i > 0 && len(seg) > 0 {
			seg = seg[1:]
		}
		path = append(path, seg...)
	}
	return path
}

// RoundVelocity snaps a velocity to 1e-6 so integrated primitives compare cleanly.
func RoundVelocity(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

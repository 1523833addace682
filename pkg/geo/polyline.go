package geo

import (
	"github.com/twpayne/go-polyline"

	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

// PolylineFromStates encodes the (x, y) positions of a path with the polyline algorithm
// (5 decimal places), giving API clients a compact path representation.
func PolylineFromStates(states []da.State) string {
	coords := make([][]float64, len(states))
	for i, s := range states {
		coords[i] = []float64{s.Position.X, s.Position.Y}
	}
	return string(polyline.EncodeCoords(coords))
}

package costfunction

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/primplanner/pkg"
	"github.com/lintang-b-s/primplanner/pkg/geo"
)

// Heuristic estimates the remaining cost from a position to the goal center. Neither metric
// looks at heading or velocity.
type Heuristic struct {
	kind pkg.HeuristicType
	goal r2.Point
}

func NewHeuristic(kind pkg.HeuristicType, goalCenter r2.Point) Heuristic {
	return Heuristic{kind: kind, goal: goalCenter}
}

func (h Heuristic) GetType() pkg.HeuristicType {
	return h.kind
}

func (h Heuristic) Estimate(p r2.Point) float64 {
	if h.kind == pkg.MANHATTAN {
		return geo.CalculateManhattanDistance(p, h.goal)
	}
	return geo.CalculateEuclideanDistance(p, h.goal)
}

// ParseHeuristic accepts "euclidean" and "manhattan" (case-insensitive).
func ParseHeuristic(s string) (pkg.HeuristicType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euclidean", "euclid":
		return pkg.EUCLIDEAN, nil
	case "manhattan", "taxicab":
		return pkg.MANHATTAN, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
	}
}

// HeuristicFromFlag maps the boolean heuristic switch: true selects euclidean, false manhattan.
func HeuristicFromFlag(euclidean bool) pkg.HeuristicType {
	if euclidean {
		return pkg.EUCLIDEAN
	}
	return pkg.MANHATTAN
}

package spatialindex

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/primplanner/pkg"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/lintang-b-s/primplanner/pkg/geo"
)

// VehicleShape is the ego vehicle's rectangular footprint, centered on the state position.
type VehicleShape struct {
	Length float64 `json:"length" mapstructure:"length" validate:"gte=0"`
	Width  float64 `json:"width" mapstructure:"width" validate:"gte=0"`
}

// CollisionChecker checks trajectory segments against the obstacle index and the map boundary.
type CollisionChecker struct {
	index       *ObstacleIndex
	boundary    da.Rectangle
	hasBoundary bool
	vehicle     VehicleShape
	resolution  float64
}

// NewCollisionChecker. boundary may be nil when the map is unbounded. resolution is the maximum
// distance between two sampled footprints along a segment, <= 0 selects the default.
func NewCollisionChecker(index *ObstacleIndex, boundary *da.Rectangle, vehicle VehicleShape,
	resolution float64) *CollisionChecker {
	if resolution <= 0 {
		resolution = pkg.DEFAULT_COLLISION_RESOLUTION
	}
	cc := &CollisionChecker{
		index:      index,
		vehicle:    vehicle,
		resolution: resolution,
	}
	if boundary != nil {
		cc.boundary = *boundary
		cc.hasBoundary = true
	}
	return cc
}

// IsFree reports whether the vehicle can follow segment without touching an obstacle or
// leaving the boundary. Consecutive states are joined by linear interpolation.
func (cc *CollisionChecker) IsFree(segment []da.State) bool {
	if len(segment) == 0 {
		return true
	}
	if !cc.footprintFree(segment[0].Position, segment[0].Orientation) {
		return false
	}
	for i := 1; i < len(segment); i++ {
		a, b := segment[i-1], segment[i]
		dist := geo.CalculateEuclideanDistance(a.Position, b.Position)
		n := int(math.Ceil(dist / cc.resolution))
		if n < 1 {
			n = 1
		}
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n)
			p := geo.Lerp(a.Position, b.Position, t)
			theta := a.Orientation + geo.NormalizeAngle(b.Orientation-a.Orientation)*t
			if !cc.footprintFree(p, theta) {
				return false
			}
		}
	}
	return true
}

func (cc *CollisionChecker) footprintFree(p r2.Point, orientation float64) bool {
	fp := cc.Footprint(p, orientation)
	if cc.hasBoundary && !cc.boundary.Rect().Contains(fp) {
		return false
	}
	return !cc.index.Intersects(fp)
}

// Footprint is the axis-aligned bounding box of the vehicle rectangle rotated by orientation.
func (cc *CollisionChecker) Footprint(p r2.Point, orientation float64) r2.Rect {
	sin, cos := math.Sincos(orientation)
	hl, hw := cc.vehicle.Length/2, cc.vehicle.Width/2
	hx := math.Abs(hl*cos) + math.Abs(hw*sin)
	hy := math.Abs(hl*sin) + math.Abs(hw*cos)
	return r2.RectFromCenterSize(p, r2.Point{X: 2 * hx, Y: 2 * hy})
}

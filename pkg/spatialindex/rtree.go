package spatialindex

import (
	"github.com/golang/geo/r2"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// ObstacleIndex is an r-tree over static rectangular obstacles. Leaves hold the obstacle's
// position in the slice it was built from.
type ObstacleIndex struct {
	tr        *rtree.RTreeG[int]
	obstacles []da.Rectangle
}

func NewObstacleIndex() *ObstacleIndex {
	var tr rtree.RTreeG[int]
	return &ObstacleIndex{
		tr: &tr,
	}
}

// Build. insert every obstacle bounding box into the r-tree
func (oi *ObstacleIndex) Build(obstacles []da.Rectangle, log *zap.Logger) {
	log.Info("Building obstacle r-tree spatial index...", zap.Int("obstacles", len(obstacles)))

	oi.obstacles = make([]da.Rectangle, len(obstacles))
	copy(oi.obstacles, obstacles)
	for i, ob := range oi.obstacles {
		min, max := ob.Bounds()
		oi.tr.Insert(min, max, i)
	}

	log.Info("Obstacle r-tree spatial index built.")
}

// Intersects reports whether rect touches any indexed obstacle.
func (oi *ObstacleIndex) Intersects(rect r2.Rect) bool {
	hit := false
	oi.tr.Search([2]float64{rect.X.Lo, rect.Y.Lo}, [2]float64{rect.X.Hi, rect.Y.Hi},
		func(min, max [2]float64, id int) bool {
			if oi.obstacles[id].Rect().Intersects(rect) {
				hit = true
				return false
			}
			return true
		})
	return hit
}

func (oi *ObstacleIndex) Len() int {
	return oi.tr.Len()
}

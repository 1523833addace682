package scenario

import (
	"fmt"

	"github.com/lintang-b-s/primplanner/pkg"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/lintang-b-s/primplanner/pkg/spatialindex"
	"golang.org/x/exp/rand"
)

type RandomConfig struct {
	MapLength       float64
	MapWidth        float64
	NumObstacles    int
	MinObstacleSize float64
	MaxObstacleSize float64
	GoalSize        float64
	Vehicle         spatialindex.VehicleShape
}

func DefaultRandomConfig() RandomConfig {
	return RandomConfig{
		MapLength:       100,
		MapWidth:        40,
		NumObstacles:    12,
		MinObstacleSize: 1,
		MaxObstacleSize: 6,
		GoalSize:        4,
		Vehicle:         spatialindex.VehicleShape{Length: 4.5, Width: 1.8},
	}
}

// RandomScenario builds a benchmark instance: the vehicle starts near the left edge of the map,
// the goal sits near the right edge and obstacles are scattered in between, never covering the
// start or the goal. The same seed always yields the same scenario.
func RandomScenario(seed uint64, cfg RandomConfig) *Scenario {
	r := rand.New(rand.NewSource(seed))

	boundary := da.NewRectangle(cfg.MapLength/2, 0, cfg.MapLength, cfg.MapWidth)
	margin := cfg.Vehicle.Length + cfg.GoalSize
	start := InitialState{
		X:        margin,
		Y:        uniform(r, -cfg.MapWidth/4, cfg.MapWidth/4),
		Velocity: 0,
	}
	goal := da.NewRectangle(cfg.MapLength-margin, uniform(r, -cfg.MapWidth/4, cfg.MapWidth/4),
		cfg.GoalSize, cfg.GoalSize)

	startKeepOut := da.NewRectangle(start.X, start.Y, 2*cfg.Vehicle.Length, 2*cfg.Vehicle.Length)
	obstacles := make([]da.Rectangle, 0, cfg.NumObstacles)
	for attempts := 0; len(obstacles) < cfg.NumObstacles && attempts < 100*cfg.NumObstacles+1; attempts++ {
		ob := da.NewRectangle(
			uniform(r, margin, cfg.MapLength-margin),
			uniform(r, -cfg.MapWidth/2, cfg.MapWidth/2),
			uniform(r, cfg.MinObstacleSize, cfg.MaxObstacleSize),
			uniform(r, cfg.MinObstacleSize, cfg.MaxObstacleSize),
		)
		if ob.Rect().Intersects(startKeepOut.Rect()) || ob.Rect().Intersects(goal.Rect()) {
			continue
		}
		obstacles = append(obstacles, ob)
	}

	return &Scenario{
		Name:                fmt.Sprintf("random_%d", seed),
		Initial:             start,
		Goal:                goal,
		Obstacles:           obstacles,
		Boundary:            &boundary,
		Vehicle:             cfg.Vehicle,
		CollisionResolution: pkg.DEFAULT_COLLISION_RESOLUTION,
		VelocityTolerance:   pkg.DEFAULT_VELOCITY_TOLERANCE,
	}
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

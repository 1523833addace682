package spatialindex

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestIndex(obstacles ...da.Rectangle) *ObstacleIndex {
	index := NewObstacleIndex()
	index.Build(obstacles, zap.NewNop())
	return index
}

func TestCollisionCheckerIsFree(t *testing.T) {
	index := newTestIndex(da.NewRectangle(5, 0, 2, 2))
	boundary := da.NewRectangle(0, 0, 20, 20)

	testCases := []struct {
		name    string
		vehicle VehicleShape
		segment []da.State
		want    bool
	}{
		{
			name:    "stops before obstacle",
			segment: []da.State{da.NewState(0, 0, 0, 0, 0), da.NewState(3, 0, 0, 0, 1)},
			want:    true,
		},
		{
			name:    "passes through obstacle between samples",
			segment: []da.State{da.NewState(0, 0, 0, 0, 0), da.NewState(8, 0, 0, 0, 1)},
			want:    false,
		},
		{
			name:    "passes above obstacle",
			segment: []da.State{da.NewState(0, 3, 0, 0, 0), da.NewState(8, 3, 0, 0, 1)},
			want:    true,
		},
		{
			name:    "leaves boundary",
			segment: []da.State{da.NewState(8, 3, 0, 0, 0), da.NewState(12, 3, 0, 0, 1)},
			want:    false,
		},
		{
			name:    "vehicle footprint clears obstacle",
			vehicle: VehicleShape{Length: 1, Width: 1},
			segment: []da.State{da.NewState(0, 0, 0, 0, 0), da.NewState(3.4, 0, 0, 0, 1)},
			want:    true,
		},
		{
			name:    "vehicle footprint touches obstacle",
			vehicle: VehicleShape{Length: 1, Width: 1},
			segment: []da.State{da.NewState(0, 0, 0, 0, 0), da.NewState(3.6, 0, 0, 0, 1)},
			want:    false,
		},
		{
			name: "empty segment",
			want: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewCollisionChecker(index, &boundary, tt.vehicle, 0)
			assert.Equal(t, tt.want, cc.IsFree(tt.segment))
		})
	}
}

func TestFootprintRotation(t *testing.T) {
	cc := NewCollisionChecker(newTestIndex(), nil, VehicleShape{Length: 4, Width: 2}, 0.5)

	fp := cc.Footprint(r2.Point{}, 0)
	assert.InDelta(t, 4.0, fp.Size().X, 1e-9)
	assert.InDelta(t, 2.0, fp.Size().Y, 1e-9)

	fp = cc.Footprint(r2.Point{X: 1, Y: 1}, math.Pi/2)
	assert.InDelta(t, 2.0, fp.Size().X, 1e-9)
	assert.InDelta(t, 4.0, fp.Size().Y, 1e-9)
	assert.InDelta(t, 1.0, fp.Center().X, 1e-9)

	// unbounded map
	assert.True(t, cc.IsFree([]da.State{da.NewState(1e6, 1e6, 0, 0, 0)}))
}

func TestObstacleIndexIntersects(t *testing.T) {
	index := newTestIndex(da.NewRectangle(5, 0, 2, 2), da.NewRectangle(20, 20, 2, 2), da.NewRectangle(-4, 0, 1, 1))
	assert.Equal(t, 3, index.Len())

	testCases := []struct {
		name   string
		center r2.Point
		want   bool
	}{
		{name: "overlaps corner", center: r2.Point{X: 19, Y: 19}, want: true},
		{name: "touches edge", center: r2.Point{X: 3.5, Y: 0}, want: true},
		{name: "between obstacles", center: r2.Point{X: 10, Y: 10}, want: false},
		{name: "far away", center: r2.Point{X: 50, Y: 50}, want: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rect := r2.RectFromCenterSize(tt.center, r2.Point{X: 1, Y: 1})
			assert.Equal(t, tt.want, index.Intersects(rect))
		})
	}
}

func TestGoalRegionFirstInGoal(t *testing.T) {
	gr := NewGoalRegion(da.NewRectangle(10, 0, 2, 2))

	idx, ok := gr.FirstInGoal([]da.State{
		da.NewState(5, 0, 0, 0, 0),
		da.NewState(9, 0, 0, 0, 1),
		da.NewState(10, 0, 0, 0, 2),
	})
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = gr.FirstInGoal([]da.State{da.NewState(5, 0, 0, 0, 0)})
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

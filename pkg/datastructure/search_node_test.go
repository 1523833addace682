package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchNodePaths(t *testing.T) {
	arena := NewTrajectoryArena()
	root := NewInitialNode(arena, NewState(0, 0, 0, 1, 0), true)
	prim := NewMotionPrimitive(3, "fwd", []State{NewState(0, 0, 0, 1, 0), NewState(1, 0, 0, 1, 1)})

	a := root.Terminal(arena)
	h1 := arena.Append(a, []State{NewState(1, 0, 0, 1, 1), NewState(2, 0, 0, 1, 2)})
	child := NewCostChildNode(root, prim, h1, 4.5)

	b := child.Terminal(arena)
	assert.InDelta(t, 2.0, b.GetX(), 1e-9)
	h2 := arena.Append(b, []State{NewState(3, 0, 0, 1, 3)})
	grandchild := NewChildNode(child, prim, h2)

	assert.Equal(t, 6, arena.Size())
	assert.Equal(t, 2, grandchild.GetDepth())
	assert.Len(t, grandchild.Primitives(), 2)

	paths := grandchild.Paths(arena)
	require.Len(t, paths, 3)
	assert.Len(t, paths[0], 1)
	assert.Len(t, paths[1], 3)
	assert.Len(t, paths[2], 2)

	flat := FlattenSegments(paths)
	require.Len(t, flat, 4)
	for i, s := range flat {
		assert.InDelta(t, float64(i), s.GetX(), 1e-9)
	}

	prev, ok := grandchild.PreviousTerminal(arena)
	require.True(t, ok)
	assert.InDelta(t, 2.0, prev.GetX(), 1e-9)
	_, ok = root.PreviousTerminal(arena)
	assert.False(t, ok)

	g, err := child.Cost()
	require.NoError(t, err)
	assert.Equal(t, 4.5, g)
	_, err = grandchild.Cost()
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestTrajectoryArenaTruncate(t *testing.T) {
	arena := NewTrajectoryArena()
	root := arena.AppendSingleton(NewState(0, 0, 0, 0, 0))
	arena.Append(NewState(0, 0, 0, 0, 0), []State{NewState(1, 1, 0, 0, 1)})
	assert.Equal(t, 3, arena.Size())

	arena.Truncate(root.Len())
	assert.Equal(t, 1, arena.Size())
	assert.Equal(t, 0.0, arena.Terminal(root).GetX())

	arena.Truncate(10)
	assert.Equal(t, 1, arena.Size())
}

func TestRectangle(t *testing.T) {
	r := NewRectangle(10, 0, 2, 4)

	testCases := []struct {
		name         string
		x, y         float64
		wantContains bool
		wantStrict   bool
	}{
		{name: "center", x: 10, y: 0, wantContains: true, wantStrict: true},
		{name: "on left edge", x: 9, y: 0, wantContains: true, wantStrict: false},
		{name: "near corner", x: 10.9, y: 1.9, wantContains: true, wantStrict: true},
		{name: "outside", x: 8, y: 0, wantContains: false, wantStrict: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			p := NewState(tt.x, tt.y, 0, 0, 0).Position
			assert.Equal(t, tt.wantContains, r.ContainsPoint(p))
			assert.Equal(t, tt.wantStrict, r.StrictlyContainsCenter(p))
		})
	}

	min, max := r.Bounds()
	assert.Equal(t, [2]float64{9, -2}, min)
	assert.Equal(t, [2]float64{11, 2}, max)
}

package search

import (
	"testing"

	"github.com/lintang-b-s/primplanner/pkg"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcherExpand(t *testing.T) {
	s := newTestPlanner(t, laneChange(), AStar, pkg.EUCLIDEAN, 1).GetSearcher()

	_, err := s.InitialNode()
	assert.ErrorIs(t, err, ErrNotInitialized)

	root := s.Initialize(true)
	prims := s.Successors(root)
	require.Len(t, prims, 2)

	collided, straight, err := s.Expand(root, prims[0])
	require.NoError(t, err)
	assert.False(t, collided)
	assert.Equal(t, 1, straight.GetDepth())
	assert.Same(t, root, straight.GetParent())
	g, err := straight.Cost()
	require.NoError(t, err)
	assert.InDelta(t, pkg.NOMINAL_PRIMITIVE_COST, g, 1e-9)

	f, err := s.Evaluate(straight)
	require.NoError(t, err)
	assert.InDelta(t, 4.5+8, f, 1e-9)

	collided, shifted, err := s.Expand(root, prims[1])
	require.NoError(t, err)
	assert.True(t, collided)
	assert.InDelta(t, 2.0, s.Terminal(shifted).GetY(), 1e-9)

	ok, _ := s.GoalTest(straight)
	assert.False(t, ok)
}

func TestSearcherGoalTestTruncates(t *testing.T) {
	in := straightOnly()
	s := newTestPlanner(t, in, AStar, pkg.EUCLIDEAN, 1).GetSearcher()
	root := s.Initialize(true)

	long := da.NewMotionPrimitive(7, "long", []da.State{
		da.NewState(0, 0, 0, 0, 0),
		da.NewState(5, 0, 0, 0, 1),
		da.NewState(9.5, 0, 0, 0, 2),
		da.NewState(10.5, 0, 0, 0, 3),
		da.NewState(14, 0, 0, 0, 4),
	})
	_, child, err := s.Expand(root, long)
	require.NoError(t, err)
	ok, paths := s.GoalTest(child)
	require.True(t, ok)
	require.Len(t, paths, 2)
	last := paths[1]
	assert.Len(t, last, 3)
	assert.InDelta(t, 9.5, last[len(last)-1].GetX(), 1e-9)
}

func TestSearcherPlainNodes(t *testing.T) {
	s := newTestPlanner(t, straightOnly(), DepthFirst, pkg.EUCLIDEAN, 1).GetSearcher()
	root := s.Initialize(false)
	_, child, err := s.Expand(root, s.Successors(root)[0])
	require.NoError(t, err)
	assert.False(t, child.IsCostAware())
	_, grandchild, err := s.Expand(child, s.Successors(child)[0])
	require.NoError(t, err)
	assert.False(t, grandchild.IsCostAware())

	_, err = s.Evaluate(child)
	assert.ErrorIs(t, err, da.ErrPrecondition)
	assert.InDelta(t, pkg.NOMINAL_PRIMITIVE_COST, s.PathCost(child), 1e-9)
	assert.InDelta(t, 2*pkg.NOMINAL_PRIMITIVE_COST, s.PathCost(grandchild), 1e-9)
}

func TestSearcherRestart(t *testing.T) {
	s := newTestPlanner(t, straightOnly(), IDAStar, pkg.EUCLIDEAN, 1).GetSearcher()
	root := s.Initialize(true)
	_, child, err := s.Expand(root, s.Successors(root)[0])
	require.NoError(t, err)
	_, _, err = s.Expand(child, s.Successors(child)[0])
	require.NoError(t, err)
	require.Greater(t, s.Arena().Size(), 1)

	again, err := s.Restart()
	require.NoError(t, err)
	assert.Same(t, root, again)
	assert.Equal(t, 1, s.Arena().Size())
	assert.Equal(t, da.NewState(0, 0, 0, 0, 0), s.Terminal(again))
}

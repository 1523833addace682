package search

import (
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

// Automaton returns the primitives applicable from a state, in an order that is stable for
// the whole search.
type Automaton interface {
	Successors(state da.State) []*da.MotionPrimitive
}

// CollisionChecker reports whether a trajectory segment touches no obstacle or boundary.
type CollisionChecker interface {
	IsFree(segment []da.State) bool
}

// GoalChecker reports whether and where a segment enters the goal region.
type GoalChecker interface {
	FirstInGoal(segment []da.State) (int, bool)
	Goal() da.Rectangle
}

// Observer receives search events for visualization or bookkeeping. Implementations must not
// influence the search; segments passed to them are copies.
type Observer interface {
	OnFrontier(segment []da.State)
	OnCollision(segment []da.State)
	OnBoundRaised(oldLimit, newLimit float64)
	OnSolution(path [][]da.State)
}

type nopObserver struct{}

func (nopObserver) OnFrontier([]da.State)          {}
func (nopObserver) OnCollision([]da.State)         {}
func (nopObserver) OnBoundRaised(float64, float64) {}
func (nopObserver) OnSolution([][]da.State)        {}

// NopObserver ignores every event.
func NopObserver() Observer {
	return nopObserver{}
}

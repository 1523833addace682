package costfunction

import (
	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/primplanner/pkg"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

// CostFunction returns the incremental cost g of reaching current from previous.
// hasPrevious is false for the initial state.
type CostFunction interface {
	StepCost(current, previous r2.Point, hasPrevious bool) float64
}

// GoalProximityCost charges a fixed nominal cost per primitive, except for primitives whose end
// position lies strictly inside the goal box: those are charged the longitudinal distance from
// the previous position to the goal's entry edge (goal.x - L/2 - prev.x). Primitives that stop
// close to the goal's near edge become cheaper than ones that drive deep into it.
type GoalProximityCost struct {
	goal    da.Rectangle
	nominal float64
}

func NewGoalProximityCost(goal da.Rectangle) *GoalProximityCost {
	return &GoalProximityCost{goal: goal, nominal: pkg.NOMINAL_PRIMITIVE_COST}
}

func (gc *GoalProximityCost) StepCost(current, previous r2.Point, hasPrevious bool) float64 {
	if !gc.goal.StrictlyContainsCenter(current) {
		return gc.nominal
	}
	if !hasPrevious {
		// no previous state to measure from: charge the nominal cost
		return gc.nominal
	}
	return gc.goal.CenterX - gc.goal.Length/2 - previous.X
}

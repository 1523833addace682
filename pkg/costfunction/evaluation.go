package costfunction

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

var (
	ErrBadWeight        = errors.New("heuristic weight must be a non-negative number")
	ErrUnknownHeuristic = errors.New("unknown heuristic")
)

// Evaluator computes f(n) = g(n) + w*h(n). w = 1 is plain A*, w > 1 a greedier weighted search,
// w = 0 uniform-cost search. An Evaluator is fixed for one search invocation.
type Evaluator struct {
	costFunction CostFunction
	heuristic    Heuristic
	weight       float64
}

func NewEvaluator(costFunction CostFunction, heuristic Heuristic, weight float64) (*Evaluator, error) {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, ErrBadWeight
	}
	return &Evaluator{
		costFunction: costFunction,
		heuristic:    heuristic,
		weight:       weight,
	}, nil
}

// NewGoalEvaluator wires the goal-proximity cost and a heuristic toward the goal center.
func NewGoalEvaluator(goal da.Rectangle, heuristic Heuristic, weight float64) (*Evaluator, error) {
	return NewEvaluator(NewGoalProximityCost(goal), heuristic, weight)
}

func (e *Evaluator) GetWeight() float64 {
	return e.weight
}

func (e *Evaluator) GetHeuristic() Heuristic {
	return e.heuristic
}

// ChildCost is g of a child: the parent's g plus the step cost of the child's move.
func (e *Evaluator) ChildCost(parentCost float64, current, previous r2.Point, hasPrevious bool) float64 {
	return parentCost + e.costFunction.StepCost(current, previous, hasPrevious)
}

func (e *Evaluator) H(p r2.Point) float64 {
	return e.heuristic.Estimate(p)
}

func (e *Evaluator) F(g float64, p r2.Point) float64 {
	return g + e.weight*e.H(p)
}

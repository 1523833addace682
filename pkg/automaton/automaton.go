// Package automaton holds the maneuver automaton: a library of motion primitives and the rule
// deciding which primitives can follow a given vehicle state.
package automaton

import (
	"errors"
	"math"
	"sort"

	"github.com/lintang-b-s/primplanner/pkg"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

var (
	ErrEmptyPrimitive   = errors.New("motion primitive has fewer than two states")
	ErrDuplicatedID     = errors.New("duplicated motion primitive id")
	ErrInvalidTolerance = errors.New("velocity tolerance must be non-negative")
)

// Automaton returns the primitives applicable from a state. A primitive is applicable when its
// initial velocity matches the state's velocity within the tolerance. Successor order is by
// primitive id, so it is stable for the whole lifetime of the automaton.
type Automaton struct {
	primitives        []*da.MotionPrimitive
	velocityTolerance float64
}

func NewAutomaton(primitives []*da.MotionPrimitive, velocityTolerance float64) (*Automaton, error) {
	if velocityTolerance < 0 || math.IsNaN(velocityTolerance) {
		return nil, ErrInvalidTolerance
	}

	seen := make(map[int]struct{}, len(primitives))
	sorted := make([]*da.MotionPrimitive, 0, len(primitives))
	for _, mp := range primitives {
		if mp.Len() < 2 {
			return nil, ErrEmptyPrimitive
		}
		if _, ok := seen[mp.GetID()]; ok {
			return nil, ErrDuplicatedID
		}
		seen[mp.GetID()] = struct{}{}
		sorted = append(sorted, mp)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].GetID() < sorted[j].GetID()
	})

	return &Automaton{
		primitives:        sorted,
		velocityTolerance: velocityTolerance,
	}, nil
}

// NewDefaultAutomaton is NewAutomaton with pkg.DEFAULT_VELOCITY_TOLERANCE.
func NewDefaultAutomaton(primitives []*da.MotionPrimitive) (*Automaton, error) {
	return NewAutomaton(primitives, pkg.DEFAULT_VELOCITY_TOLERANCE)
}

// Successors returns the primitives whose preconditions match state.
func (a *Automaton) Successors(state da.State) []*da.MotionPrimitive {
	successors := make([]*da.MotionPrimitive, 0, len(a.primitives))
	for _, mp := range a.primitives {
		if math.Abs(mp.InitialVelocity()-state.Velocity) <= a.velocityTolerance {
			successors = append(successors, mp)
		}
	}
	return successors
}

func (a *Automaton) GetPrimitives() []*da.MotionPrimitive {
	return a.primitives
}

func (a *Automaton) GetVelocityTolerance() float64 {
	return a.velocityTolerance
}

func (a *Automaton) NumberOfPrimitives() int {
	return len(a.primitives)
}

// GetPrimitive returns the primitive with the given id.
func (a *Automaton) GetPrimitive(id int) (*da.MotionPrimitive, bool) {
	i := sort.Search(len(a.primitives), func(i int) bool {
		return a.primitives[i].GetID() >= id
	})
	if i < len(a.primitives) && a.primitives[i].GetID() == id {
		return a.primitives[i], true
	}
	return nil, false
}

package spatialindex

import (
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

// GoalRegion is the axis-aligned goal rectangle. A state is in the goal when its position lies
// in the closed rectangle.
type GoalRegion struct {
	goal da.Rectangle
}

func NewGoalRegion(goal da.Rectangle) *GoalRegion {
	return &GoalRegion{goal: goal}
}

func (gr *GoalRegion) Goal() da.Rectangle {
	return gr.goal
}

func (gr *GoalRegion) Contains(s da.State) bool {
	return gr.goal.ContainsPoint(s.Position)
}

// FirstInGoal returns the index of the first state of segment inside the goal region.
func (gr *GoalRegion) FirstInGoal(segment []da.State) (int, bool) {
	for i, s := range segment {
		if gr.Contains(s) {
			return i, true
		}
	}
	return -1, false
}

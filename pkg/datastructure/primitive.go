package datastructure

import "fmt"

// MotionPrimitive is a precomputed short maneuver. Its trajectory is a template that starts at
// the origin with heading 0 and time step 0; the search maps it into the frame of the state
// it is applied from.
type MotionPrimitive struct {
	id         int
	name       string
	trajectory []State
}

func NewMotionPrimitive(id int, name string, trajectory []State) *MotionPrimitive {
	return &MotionPrimitive{
		id:         id,
		name:       name,
		trajectory: trajectory,
	}
}

func (mp *MotionPrimitive) GetID() int {
	return mp.id
}

func (mp *MotionPrimitive) GetName() string {
	return mp.name
}

func (mp *MotionPrimitive) GetTrajectory() []State {
	return mp.trajectory
}

func (mp *MotionPrimitive) Len() int {
	return len(mp.trajectory)
}

func (mp *MotionPrimitive) InitialVelocity() float64 {
	if len(mp.trajectory) == 0 {
		return 0
	}
	return mp.trajectory[0].Velocity
}

func (mp *MotionPrimitive) FinalVelocity() float64 {
	if len(mp.trajectory) == 0 {
		return 0
	}
	return mp.trajectory[len(mp.trajectory)-1].Velocity
}

// Duration is the number of time steps the maneuver spans.
func (mp *MotionPrimitive) Duration() int {
	if len(mp.trajectory) == 0 {
		return 0
	}
	return mp.trajectory[len(mp.trajectory)-1].TimeStep - mp.trajectory[0].TimeStep
}

func (mp *MotionPrimitive) String() string {
	if mp.name != "" {
		return fmt.Sprintf("%d:%s", mp.id, mp.name)
	}
	return fmt.Sprintf("%d", mp.id)
}

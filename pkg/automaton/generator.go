package automaton

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/lintang-b-s/primplanner/pkg/geo"
)

// GeneratorConfig describes a grid of primitives integrated with a unicycle model.
// For every initial velocity v0, every acceleration a and every yaw rate w, one primitive is
// produced that starts at v0 and applies (a, w) for Steps steps of length TimeStep seconds.
type GeneratorConfig struct {
	Velocities    []float64 `json:"velocities" mapstructure:"velocities" validate:"required,dive,gte=0"`
	Accelerations []float64 `json:"accelerations" mapstructure:"accelerations"`
	YawRates      []float64 `json:"yaw_rates" mapstructure:"yaw_rates"`
	Steps         int       `json:"steps" mapstructure:"steps" validate:"gte=1"`
	TimeStep      float64   `json:"time_step" mapstructure:"time_step" validate:"gt=0"`
	MaxVelocity   float64   `json:"max_velocity" mapstructure:"max_velocity" validate:"gt=0"`
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Velocities:    []float64{0, 2.5, 5},
		Accelerations: []float64{-2.5, 0, 2.5},
		YawRates:      []float64{-0.4, 0, 0.4},
		Steps:         10,
		TimeStep:      0.1,
		MaxVelocity:   5,
	}
}

// Generate integrates every (velocity, acceleration, yaw rate) combination. Primitives whose
// final velocity leaves [0, MaxVelocity] are skipped, as are standing-still primitives.
func Generate(cfg GeneratorConfig) []*da.MotionPrimitive {
	accelerations := cfg.Accelerations
	if len(accelerations) == 0 {
		accelerations = []float64{0}
	}
	yawRates := cfg.YawRates
	if len(yawRates) == 0 {
		yawRates = []float64{0}
	}

	primitives := make([]*da.MotionPrimitive, 0, len(cfg.Velocities)*len(accelerations)*len(yawRates))
	id := 0
	for _, v0 := range cfg.Velocities {
		for _, acc := range accelerations {
			vf := v0 + acc*cfg.TimeStep*float64(cfg.Steps)
			if da.Lt(vf, 0) || da.Lt(cfg.MaxVelocity, vf) {
				continue
			}
			if da.Eq(v0, 0) && da.Eq(vf, 0) {
				continue
			}
			for _, yaw := range yawRates {
				traj := integrateUnicycle(v0, acc, yaw, cfg.Steps, cfg.TimeStep)
				name := fmt.Sprintf("v%.2f_a%.2f_w%.2f", v0, acc, yaw)
				primitives = append(primitives, da.NewMotionPrimitive(id, name, traj))
				id++
			}
		}
	}
	return primitives
}

func integrateUnicycle(v0, acc, yawRate float64, steps int, dt float64) []da.State {
	traj := make([]da.State, 0, steps+1)
	pos := r2.Point{}
	theta := 0.0
	v := v0
	traj = append(traj, da.State{Position: pos, Orientation: theta, Velocity: v, TimeStep: 0})
	for k := 1; k <= steps; k++ {
		vNext := math.Max(0, v+acc*dt)
		vMean := (v + vNext) / 2
		thetaMid := theta + yawRate*dt/2
		pos = pos.Add(r2.Point{X: math.Cos(thetaMid), Y: math.Sin(thetaMid)}.Mul(vMean * dt))
		theta = geo.NormalizeAngle(theta + yawRate*dt)
		v = vNext
		traj = append(traj, da.State{Position: pos, Orientation: theta, Velocity: da.RoundVelocity(v), TimeStep: k})
	}
	return traj
}

// StraightPrimitive builds a constant-velocity primitive that advances (dx, 0) over steps
// states. Handy for tests and toy scenarios.
func StraightPrimitive(id int, dx float64, steps int, velocity float64) *da.MotionPrimitive {
	if steps < 1 {
		steps = 1
	}
	traj := make([]da.State, 0, steps+1)
	for k := 0; k <= steps; k++ {
		traj = append(traj, da.NewState(dx*float64(k)/float64(steps), 0, 0, velocity, k))
	}
	return da.NewMotionPrimitive(id, fmt.Sprintf("straight_%.2f", dx), traj)
}

// TurnPrimitive builds a constant-velocity circular arc of the given length and heading change.
func TurnPrimitive(id int, length, headingChange float64, steps int, velocity float64) *da.MotionPrimitive {
	if steps < 1 {
		steps = 1
	}
	traj := make([]da.State, 0, steps+1)
	ds := length / float64(steps)
	dTheta := headingChange / float64(steps)
	pos := r2.Point{}
	theta := 0.0
	traj = append(traj, da.State{Position: pos, Velocity: velocity})
	for k := 1; k <= steps; k++ {
		thetaMid := theta + dTheta/2
		pos = pos.Add(r2.Point{X: math.Cos(thetaMid), Y: math.Sin(thetaMid)}.Mul(ds))
		theta += dTheta
		traj = append(traj, da.State{Position: pos, Orientation: geo.NormalizeAngle(theta), Velocity: velocity, TimeStep: k})
	}
	return da.NewMotionPrimitive(id, fmt.Sprintf("turn_%.2f_%.2f", length, headingChange), traj)
}

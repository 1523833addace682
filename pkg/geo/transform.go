package geo

import (
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

// TranslatePrimitive maps the primitive's template into the frame of anchor: every template
// state is rotated by the anchor orientation, shifted by the anchor position and offset in time.
// The template's first state coincides with anchor and is left out of the result.
func TranslatePrimitive(primitive *da.MotionPrimitive, anchor da.State) []da.State {
	template := primitive.GetTrajectory()
	if len(template) <= 1 {
		return []da.State{}
	}

	origin := template[0]
	translated := make([]da.State, 0, len(template)-1)
	for _, s := range template[1:] {
		local := s.Position.Sub(origin.Position)
		translated = append(translated, da.State{
			Position:    anchor.Position.Add(Rotate(local, anchor.Orientation)),
			Orientation: NormalizeAngle(anchor.Orientation + s.Orientation - origin.Orientation),
			Velocity:    s.Velocity,
			TimeStep:    anchor.TimeStep + s.TimeStep - origin.TimeStep,
		})
	}
	return translated
}

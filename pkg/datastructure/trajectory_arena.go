package datastructure

// SegmentHandle points at one trajectory segment stored in a TrajectoryArena.
type SegmentHandle struct {
	offset Index
	length Index
}

func (sh SegmentHandle) Len() int {
	return int(sh.length)
}

type Index uint32

// TrajectoryArena is append-only storage for the trajectory segments created during one search.
// Nodes keep a SegmentHandle instead of copying their whole path.
type TrajectoryArena struct {
	states []State
}

func NewTrajectoryArena() *TrajectoryArena {
	return &TrajectoryArena{
		states: make([]State, 0),
	}
}

// Append stores anchor followed by states as one new segment.
func (ta *TrajectoryArena) Append(anchor State, states []State) SegmentHandle {
	offset := Index(len(ta.states))
	ta.states = append(ta.states, anchor)
	ta.states = append(ta.states, states...)
	return SegmentHandle{offset: offset, length: Index(len(states) + 1)}
}

// AppendSingleton stores a segment made of exactly one state.
func (ta *TrajectoryArena) AppendSingleton(s State) SegmentHandle {
	offset := Index(len(ta.states))
	ta.states = append(ta.states, s)
	return SegmentHandle{offset: offset, length: 1}
}

// Segment returns the states of h. The returned slice aliases the arena and must not be modified.
func (ta *TrajectoryArena) Segment(h SegmentHandle) []State {
	return ta.states[h.offset : h.offset+h.length : h.offset+h.length]
}

func (ta *TrajectoryArena) Terminal(h SegmentHandle) State {
	return ta.states[h.offset+h.length-1]
}

// Size is the number of states stored.
func (ta *TrajectoryArena) Size() int {
	return len(ta.states)
}

// Truncate drops every state stored after the first size states. Handles pointing past size
// become invalid.
func (ta *TrajectoryArena) Truncate(size int) {
	if size < len(ta.states) {
		ta.states = ta.states[:size]
	}
}

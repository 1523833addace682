package datastructure

import (
	"errors"
)

var (
	ErrPrecondition = errors.New("cost is only defined for cost-aware search nodes")
)

// SearchNode is an immutable snapshot of one partial plan. Nodes form a persistent tree: a child
// points at its parent and at the one segment it added to the arena, so the full path is shared
// with every ancestor instead of being copied.
type SearchNode struct {
	parent    *SearchNode
	segment   SegmentHandle
	primitive *MotionPrimitive
	depth     int
	cost      float64
	costAware bool
}

// NewInitialNode returns the root of a search tree: a single segment made of the initial state.
func NewInitialNode(arena *TrajectoryArena, initial State, costAware bool) *SearchNode {
	return &SearchNode{
		segment:   arena.AppendSingleton(initial),
		costAware: costAware,
	}
}

// NewChildNode builds the node reached from parent by applying primitive, whose translated
// segment has already been stored in the arena.
func NewChildNode(parent *SearchNode, primitive *MotionPrimitive, segment SegmentHandle) *SearchNode {
	return &SearchNode{
		parent:    parent,
		segment:   segment,
		primitive: primitive,
		depth:     parent.depth + 1,
		costAware: false,
	}
}

// NewCostChildNode is NewChildNode for cost-aware nodes with accumulated cost g.
func NewCostChildNode(parent *SearchNode, primitive *MotionPrimitive, segment SegmentHandle, cost float64) *SearchNode {
	return &SearchNode{
		parent:    parent,
		segment:   segment,
		primitive: primitive,
		depth:     parent.depth + 1,
		cost:      cost,
		costAware: true,
	}
}

func (n *SearchNode) GetParent() *SearchNode {
	return n.parent
}

func (n *SearchNode) GetDepth() int {
	return n.depth
}

func (n *SearchNode) GetSegment() SegmentHandle {
	return n.segment
}

// GetPrimitive returns the primitive that produced this node, nil for the initial node.
func (n *SearchNode) GetPrimitive() *MotionPrimitive {
	return n.primitive
}

func (n *SearchNode) IsCostAware() bool {
	return n.costAware
}

// Cost returns g(n).
func (n *SearchNode) Cost() (float64, error) {
	if !n.costAware {
		return 0, ErrPrecondition
	}
	return n.cost, nil
}

// Terminal returns the node's current state, the last state of its last segment.
func (n *SearchNode) Terminal(arena *TrajectoryArena) State {
	return arena.Terminal(n.segment)
}

// PreviousTerminal returns the terminal state of the parent, false for the initial node.
func (n *SearchNode) PreviousTerminal(arena *TrajectoryArena) (State, bool) {
	if n.parent == nil {
		return State{}, false
	}
	return n.parent.Terminal(arena), true
}

// Primitives returns the primitives applied from the root, in order. len == depth.
func (n *SearchNode) Primitives() []*MotionPrimitive {
	prims := make([]*MotionPrimitive, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		prims[cur.depth-1] = cur.primitive
	}
	return prims
}

// Paths returns copies of the node's segments, root first. len == depth+1.
func (n *SearchNode) Paths(arena *TrajectoryArena) [][]State {
	paths := make([][]State, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		seg := arena.Segment(cur.segment)
		cp := make([]State, len(seg))
		copy(cp, seg)
		paths[cur.depth] = cp
	}
	return paths
}

package search

import (
	"errors"

	"github.com/lintang-b-s/primplanner/pkg/costfunction"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/lintang-b-s/primplanner/pkg/geo"
)

var (
	ErrNotInitialized = errors.New("searcher has no initial node, call Initialize first")
)

// Searcher holds the problem instance shared by every search strategy: the initial state, the
// automaton, collision and goal checks and the evaluation function. It also owns the trajectory
// arena of the current search, so a Searcher serves one search at a time.
type Searcher struct {
	initialState da.State
	automaton    Automaton
	collision    CollisionChecker
	goal         GoalChecker
	evaluator    *costfunction.Evaluator
	observer     Observer
	observing    bool

	arena       *da.TrajectoryArena
	initialNode *da.SearchNode
}

func NewSearcher(initialState da.State, automaton Automaton, collision CollisionChecker, goal GoalChecker,
	evaluator *costfunction.Evaluator, observer Observer) *Searcher {
	_, nop := observer.(nopObserver)
	if observer == nil {
		observer = NopObserver()
		nop = true
	}
	return &Searcher{
		initialState: initialState,
		automaton:    automaton,
		collision:    collision,
		goal:         goal,
		evaluator:    evaluator,
		observer:     observer,
		observing:    !nop,
		arena:        da.NewTrajectoryArena(),
	}
}

// Initialize starts a fresh search tree and returns its root.
func (s *Searcher) Initialize(costAware bool) *da.SearchNode {
	s.arena = da.NewTrajectoryArena()
	s.initialNode = da.NewInitialNode(s.arena, s.initialState, costAware)
	if s.observing {
		s.observer.OnFrontier(s.copySegment(s.initialNode))
	}
	return s.initialNode
}

// InitialNode returns the root of the current search tree.
func (s *Searcher) InitialNode() (*da.SearchNode, error) {
	if s.initialNode == nil {
		return nil, ErrNotInitialized
	}
	return s.initialNode, nil
}

// Restart forgets every node but the root. Segments stored after the initial one are dropped
// from the arena, so nodes created before the restart must not be used afterwards.
func (s *Searcher) Restart() (*da.SearchNode, error) {
	if s.initialNode == nil {
		return nil, ErrNotInitialized
	}
	s.arena.Truncate(s.initialNode.GetSegment().Len())
	return s.initialNode, nil
}

func (s *Searcher) Arena() *da.TrajectoryArena {
	return s.arena
}

func (s *Searcher) Evaluator() *costfunction.Evaluator {
	return s.evaluator
}

func (s *Searcher) Terminal(node *da.SearchNode) da.State {
	return node.Terminal(s.arena)
}

// Successors returns the primitives applicable from the node's terminal state.
func (s *Searcher) Successors(node *da.SearchNode) []*da.MotionPrimitive {
	return s.automaton.Successors(node.Terminal(s.arena))
}

// Expand applies primitive to node. The returned child is always built; collided reports whether
// its segment hits an obstacle or leaves the boundary. A cost-aware parent yields a cost-aware
// child, a plain parent a plain child.
func (s *Searcher) Expand(node *da.SearchNode, primitive *da.MotionPrimitive) (collided bool, child *da.SearchNode, err error) {
	anchor := node.Terminal(s.arena)
	translated := geo.TranslatePrimitive(primitive, anchor)
	handle := s.arena.Append(anchor, translated)

	parentCost, costErr := node.Cost()
	switch {
	case costErr == nil:
		terminal := s.arena.Terminal(handle)
		g := s.evaluator.ChildCost(parentCost, terminal.Position, anchor.Position, true)
		child = da.NewCostChildNode(node, primitive, handle, g)
	case errors.Is(costErr, da.ErrPrecondition):
		child = da.NewChildNode(node, primitive, handle)
	default:
		return false, nil, costErr
	}

	collided = !s.collision.IsFree(s.arena.Segment(handle))
	if s.observing {
		if collided {
			s.observer.OnCollision(s.copySegment(child))
		} else {
			s.observer.OnFrontier(s.copySegment(child))
		}
	}
	return collided, child, nil
}

// GoalTest checks whether the states node added reach the goal. On success it returns the full
// path with the last segment cut right after the first state inside the goal.
func (s *Searcher) GoalTest(node *da.SearchNode) (bool, [][]da.State) {
	segment := s.arena.Segment(node.GetSegment())
	if len(segment) < 2 {
		return false, nil
	}
	idx, ok := s.goal.FirstInGoal(segment[1:])
	if !ok {
		return false, nil
	}
	paths := node.Paths(s.arena)
	last := len(paths) - 1
	paths[last] = paths[last][:idx+2]
	return true, paths
}

// Evaluate returns f(n) = g(n) + w*h(n).
func (s *Searcher) Evaluate(node *da.SearchNode) (float64, error) {
	g, err := node.Cost()
	if err != nil {
		return 0, err
	}
	return s.evaluator.F(g, node.Terminal(s.arena).Position), nil
}

// Heuristic returns h(n), without the weight.
func (s *Searcher) Heuristic(node *da.SearchNode) float64 {
	return s.evaluator.H(node.Terminal(s.arena).Position)
}

// PathCost is the accumulated step cost along the node's ancestry. It equals g(n) for
// cost-aware nodes and is how plain nodes get a cost for reporting.
func (s *Searcher) PathCost(node *da.SearchNode) float64 {
	if g, err := node.Cost(); err == nil {
		return g
	}
	chain := make([]*da.SearchNode, node.GetDepth()+1)
	for cur := node; cur != nil; cur = cur.GetParent() {
		chain[cur.GetDepth()] = cur
	}
	cost := 0.0
	for i := 1; i < len(chain); i++ {
		prev := chain[i-1].Terminal(s.arena).Position
		cur := chain[i].Terminal(s.arena).Position
		cost = s.evaluator.ChildCost(cost, cur, prev, true)
	}
	return cost
}

func (s *Searcher) copySegment(node *da.SearchNode) []da.State {
	seg := s.arena.Segment(node.GetSegment())
	cp := make([]da.State, len(seg))
	copy(cp, seg)
	return cp
}

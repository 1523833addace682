package search

import (
	"math"

	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

// FrontierPolicy is what tells A*, IDA* and depth-first search apart. The planner loop is the
// same for all of them.
type FrontierPolicy interface {
	CostAware() bool
	Priority(s *Searcher, node *da.SearchNode) (float64, error)
	// Start is called once with the root's priority.
	Start(rootPriority float64)
	// Overflow reports whether a child's priority exceeds the current limit. When it does the
	// limit has already been raised and the planner must rebuild the frontier from the root.
	Overflow(priority float64) (bool, float64, float64)
	// Admit reports whether a valid, non-goal child goes into the fringe.
	Admit(node *da.SearchNode) bool
	Bounds() []float64
}

type aStarPolicy struct{}

func newAStarPolicy() *aStarPolicy {
	return &aStarPolicy{}
}

func (p *aStarPolicy) CostAware() bool { return true }

func (p *aStarPolicy) Priority(s *Searcher, node *da.SearchNode) (float64, error) {
	return s.Evaluate(node)
}

func (p *aStarPolicy) Start(float64) {}

func (p *aStarPolicy) Overflow(float64) (bool, float64, float64) {
	return false, 0, 0
}

func (p *aStarPolicy) Admit(*da.SearchNode) bool { return true }

func (p *aStarPolicy) Bounds() []float64 { return nil }

// idaStarPolicy keeps a cost limit that starts at f(root). A child above the limit raises the
// limit to its f and throws the whole frontier away.
type idaStarPolicy struct {
	limit  float64
	bounds []float64
}

func newIDAStarPolicy() *idaStarPolicy {
	return &idaStarPolicy{limit: math.Inf(1), bounds: make([]float64, 0)}
}

func (p *idaStarPolicy) CostAware() bool { return true }

func (p *idaStarPolicy) Priority(s *Searcher, node *da.SearchNode) (float64, error) {
	return s.Evaluate(node)
}

func (p *idaStarPolicy) Start(rootPriority float64) {
	p.limit = rootPriority
	p.bounds = append(p.bounds[:0], rootPriority)
}

func (p *idaStarPolicy) Overflow(priority float64) (bool, float64, float64) {
	if priority <= p.limit {
		return false, p.limit, p.limit
	}
	old := p.limit
	p.limit = priority
	p.bounds = append(p.bounds, priority)
	return true, old, priority
}

func (p *idaStarPolicy) Admit(*da.SearchNode) bool { return true }

func (p *idaStarPolicy) Bounds() []float64 {
	out := make([]float64, len(p.bounds))
	copy(out, p.bounds)
	return out
}

// depthFirstPolicy pops the deepest node first and stops descending below maxDepth.
type depthFirstPolicy struct {
	maxDepth int
}

func newDepthFirstPolicy(maxDepth int) *depthFirstPolicy {
	return &depthFirstPolicy{maxDepth: maxDepth}
}

func (p *depthFirstPolicy) CostAware() bool { return false }

func (p *depthFirstPolicy) Priority(_ *Searcher, node *da.SearchNode) (float64, error) {
	return -float64(node.GetDepth()), nil
}

func (p *depthFirstPolicy) Start(float64) {}

func (p *depthFirstPolicy) Overflow(float64) (bool, float64, float64) {
	return false, 0, 0
}

func (p *depthFirstPolicy) Admit(node *da.SearchNode) bool {
	return node.GetDepth() < p.maxDepth
}

func (p *depthFirstPolicy) Bounds() []float64 { return nil }

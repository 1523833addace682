package search

import (
	"context"
	"time"

	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/lintang-b-s/primplanner/pkg/util"
	"go.uber.org/zap"
)

// Planner runs one best-first search loop. Frontier ordering, the IDA* limit and the DFS depth
// cap come from its FrontierPolicy.
type Planner struct {
	algorithm Algorithm
	searcher  *Searcher
	policy    FrontierPolicy
	options   Options
	log       *zap.Logger
}

func (p *Planner) GetAlgorithm() Algorithm {
	return p.algorithm
}

func (p *Planner) GetSearcher() *Searcher {
	return p.searcher
}

// Search runs the planner to completion. Failing to find a plan is not an error: the result's
// Status tells SOLVED, EXHAUSTED and BUDGET_EXCEEDED apart. The only errors are a cancelled ctx
// and broken internal preconditions.
func (p *Planner) Search(ctx context.Context) (*Result, error) {
	start := time.Now()
	s := p.searcher
	evaluator := s.Evaluator()

	root := s.Initialize(p.policy.CostAware())
	rootPriority, err := p.policy.Priority(s, root)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "evaluate initial node")
	}
	p.policy.Start(rootPriority)

	result := &Result{
		Algorithm:      p.algorithm,
		Heuristic:      evaluator.GetHeuristic().GetType(),
		Weight:         evaluator.GetWeight(),
		HeuristicValue: s.Heuristic(root),
	}

	fringe := da.NewFringe[*da.SearchNode]()
	fringe.Insert(root, rootPriority)

	finish := func(status Status) *Result {
		result.Status = status
		result.Bounds = p.policy.Bounds()
		result.Elapsed = time.Since(start)
		return result
	}

	for !fringe.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node, _, err := fringe.Pop()
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "pop fringe")
		}
		result.Expansions++

		for _, primitive := range s.Successors(node) {
			if p.options.MaxNodes > 0 && result.NodeCount >= p.options.MaxNodes {
				p.log.Debug("node budget exhausted",
					zap.String("algorithm", p.algorithm.String()),
					zap.Int("max_nodes", p.options.MaxNodes))
				return finish(StatusBudgetExceeded), nil
			}

			collided, child, err := s.Expand(node, primitive)
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrInternalServerError, "expand node")
			}
			result.NodeCount++

			priority, err := p.policy.Priority(s, child)
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrInternalServerError, "evaluate child")
			}

			if overflow, oldLimit, newLimit := p.policy.Overflow(priority); overflow {
				s.observer.OnBoundRaised(oldLimit, newLimit)
				if p.options.MaxBoundEscalations > 0 && len(p.policy.Bounds())-1 > p.options.MaxBoundEscalations {
					p.log.Debug("bound escalation budget exhausted",
						zap.Float64("limit", newLimit),
						zap.Int("max_bound_escalations", p.options.MaxBoundEscalations))
					return finish(StatusBudgetExceeded), nil
				}

				fringe.Clear()
				root, err = s.Restart()
				if err != nil {
					return nil, err
				}
				fringe.Insert(root, rootPriority)
				break
			}

			if collided {
				continue
			}

			if ok, paths := s.GoalTest(child); ok {
				if s.observing {
					s.observer.OnSolution(paths)
				}
				result.Segments = paths
				result.Path = da.FlattenSegments(paths)
				result.Primitives = child.Primitives()
				result.Cost = s.PathCost(child)
				p.log.Debug("plan found",
					zap.String("algorithm", p.algorithm.String()),
					zap.Int("depth", child.GetDepth()),
					zap.Int("node_count", result.NodeCount),
					zap.Float64("cost", result.Cost))
				return finish(StatusSolved), nil
			}

			if p.policy.Admit(child) {
				fringe.Insert(child, priority)
			}
		}
	}

	return finish(StatusExhausted), nil
}

package engine

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lintang-b-s/primplanner/pkg"
	"github.com/lintang-b-s/primplanner/pkg/automaton"
	"github.com/lintang-b-s/primplanner/pkg/concurrent"
	"github.com/lintang-b-s/primplanner/pkg/costfunction"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/lintang-b-s/primplanner/pkg/scenario"
	"github.com/lintang-b-s/primplanner/pkg/spatialindex"
	"github.com/lintang-b-s/primplanner/pkg/util"
	"go.uber.org/zap"
)

// Engine holds a loaded scenario with its automaton, obstacle index and goal region. All of
// them are read-only after NewEngine, so one Engine serves concurrent searches.
type Engine struct {
	scenario  *scenario.Scenario
	automaton *automaton.Automaton
	index     *spatialindex.ObstacleIndex
	collision *spatialindex.CollisionChecker
	goal      *spatialindex.GoalRegion
	log       *zap.Logger
}

func NewEngine(sc *scenario.Scenario, aut *automaton.Automaton, logger *zap.Logger) *Engine {
	index := sc.ObstacleIndex(logger)
	return &Engine{
		scenario:  sc,
		automaton: aut,
		index:     index,
		collision: sc.CollisionChecker(index),
		goal:      spatialindex.NewGoalRegion(sc.Goal),
		log:       logger,
	}
}

// NewEngineFromFile loads the scenario at scenarioPath and its primitive library.
func NewEngineFromFile(scenarioPath string, logger *zap.Logger) (*Engine, error) {
	logger.Info("Starting motion primitive planner...")

	logger.Info("Reading scenario from ", zap.String("scenarioPath", scenarioPath))
	sc, err := scenario.Load(scenarioPath)
	if err != nil {
		return nil, err
	}

	aut, err := sc.LoadAutomaton(logger)
	if err != nil {
		return nil, err
	}
	return NewEngine(sc, aut, logger), nil
}

func (e *Engine) GetScenario() *scenario.Scenario {
	return e.scenario
}

func (e *Engine) GetAutomaton() *automaton.Automaton {
	return e.automaton
}

// Request is one search invocation.
type Request struct {
	Algorithm           search.Algorithm  `json:"algorithm"`
	Heuristic           pkg.HeuristicType `json:"heuristic"`
	Weight              float64           `json:"weight"`
	MaxNodes            int               `json:"max_nodes"`
	MaxBoundEscalations int               `json:"max_bound_escalations"`
	MaxDepth            int               `json:"max_depth"`
}

// Key identifies the request; equal keys on the same Engine give equal results.
func (r Request) Key() string {
	return strings.Join([]string{
		r.Algorithm.String(),
		r.Heuristic.String(),
		strconv.FormatFloat(r.Weight, 'g', -1, 64),
		strconv.Itoa(r.MaxNodes),
		strconv.Itoa(r.MaxBoundEscalations),
		strconv.Itoa(r.MaxDepth),
	}, "|")
}

func (r Request) String() string {
	return fmt.Sprintf("%s heuristic=%s w=%v", r.Algorithm.Title(), r.Heuristic, r.Weight)
}

// ExecuteSearch runs one search. observer may be nil.
func (e *Engine) ExecuteSearch(ctx context.Context, req Request, observer search.Observer) (*search.Result, error) {
	heuristic := costfunction.NewHeuristic(req.Heuristic, e.scenario.Goal.Center())
	evaluator, err := costfunction.NewGoalEvaluator(e.scenario.Goal, heuristic, req.Weight)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "weight %v", req.Weight)
	}

	planner, err := search.NewPlanner(req.Algorithm, e.scenario.Initial.State(), e.automaton, e.collision,
		e.goal, evaluator, e.log,
		search.WithMaxNodes(req.MaxNodes),
		search.WithMaxBoundEscalations(req.MaxBoundEscalations),
		search.WithMaxDepth(req.MaxDepth),
		search.WithObserver(observer),
	)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "algorithm %d", req.Algorithm)
	}

	res, err := planner.Search(ctx)
	if err != nil {
		return nil, err
	}
	e.log.Info("search finished",
		zap.String("scenario", e.scenario.Name),
		zap.String("algorithm", req.Algorithm.String()),
		zap.String("heuristic", req.Heuristic.String()),
		zap.Float64("weight", req.Weight),
		zap.String("status", res.Status.String()),
		zap.Int("node_count", res.NodeCount),
		zap.Float64("cost", res.Cost),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

type SweepResult struct {
	Request Request
	Result  *search.Result
	Err     error
}

type sweepJob struct {
	index   int
	request Request
}

type sweepOutcome struct {
	index  int
	result SweepResult
}

// SweepRequests is the cross product algorithms x weights x heuristics, in that nesting order.
func SweepRequests(algorithms []search.Algorithm, weights []float64, heuristics []pkg.HeuristicType,
	base Request) []Request {
	reqs := make([]Request, 0, len(algorithms)*len(weights)*len(heuristics))
	for _, alg := range algorithms {
		for _, w := range weights {
			for _, h := range heuristics {
				req := base
				req.Algorithm = alg
				req.Weight = w
				req.Heuristic = h
				reqs = append(reqs, req)
			}
		}
	}
	return reqs
}

// Sweep runs every request on numWorkers goroutines. Results come back in request order; a
// failed search is reported in its SweepResult and does not stop the others.
func (e *Engine) Sweep(ctx context.Context, reqs []Request, numWorkers int) []SweepResult {
	wp := concurrent.NewWorkerPool[sweepJob, sweepOutcome](numWorkers, len(reqs))
	e.log.Debug("sweep started", zap.Int("searches", len(reqs)), zap.Int("workers", wp.NumWorkers()))
	wp.Start(func(job sweepJob) sweepOutcome {
		if util.StopConcurrentOperation(ctx) {
			return sweepOutcome{index: job.index, result: SweepResult{Request: job.request, Err: ctx.Err()}}
		}
		res, err := e.ExecuteSearch(ctx, job.request, nil)
		return sweepOutcome{index: job.index, result: SweepResult{Request: job.request, Result: res, Err: err}}
	})
	for i, req := range reqs {
		wp.AddJob(sweepJob{index: i, request: req})
	}
	wp.Close()
	wp.Wait()

	outcomes := make([]sweepOutcome, 0, len(reqs))
	for out := range wp.CollectResults() {
		outcomes = append(outcomes, out)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].index < outcomes[j].index
	})

	results := make([]SweepResult, len(outcomes))
	for i, out := range outcomes {
		results[i] = out.result
	}
	return results
}

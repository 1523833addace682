package usecases

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/primplanner/pkg"
	"github.com/lintang-b-s/primplanner/pkg/engine"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/lintang-b-s/primplanner/pkg/scenario"
	"go.uber.org/zap"
)

// PlannerService answers plan requests against one loaded scenario. Searches are deterministic,
// so finished results are cached by request.
type PlannerService struct {
	log          *zap.Logger
	engine       PlannerEngine
	metrics      Metrics
	cache        *lru.Cache[string, *search.Result]
	sweepWorkers int
}

func NewPlannerService(log *zap.Logger, engine PlannerEngine, metrics Metrics, cacheSize, sweepWorkers int) (*PlannerService, error) {
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, err := lru.New[string, *search.Result](cacheSize)
	if err != nil {
		return nil, err
	}
	return &PlannerService{
		log:          log,
		engine:       engine,
		metrics:      metrics,
		cache:        cache,
		sweepWorkers: sweepWorkers,
	}, nil
}

// Plan returns the result for req and whether it came from the cache.
func (ps *PlannerService) Plan(ctx context.Context, req engine.Request) (*search.Result, bool, error) {
	key := req.Key()
	if res, ok := ps.cache.Get(key); ok {
		ps.metrics.CacheHit()
		return res, true, nil
	}
	ps.metrics.CacheMiss()

	res, err := ps.engine.ExecuteSearch(ctx, req, nil)
	if err != nil {
		return nil, false, err
	}
	ps.metrics.ObserveResult(res)
	if res.Status != search.StatusBudgetExceeded {
		ps.cache.Add(key, res)
	}
	return res, false, nil
}

// Sweep runs A* and IDA* with both heuristics for every weight.
func (ps *PlannerService) Sweep(ctx context.Context, weights []float64, base engine.Request) []engine.SweepResult {
	reqs := engine.SweepRequests([]search.Algorithm{search.AStar, search.IDAStar}, weights,
		[]pkg.HeuristicType{pkg.EUCLIDEAN, pkg.MANHATTAN}, base)
	results := ps.engine.Sweep(ctx, reqs, ps.sweepWorkers)
	for _, sr := range results {
		if sr.Err == nil {
			ps.metrics.ObserveResult(sr.Result)
			if sr.Result.Status != search.StatusBudgetExceeded {
				ps.cache.Add(sr.Request.Key(), sr.Result)
			}
		}
	}
	return results
}

// Stream runs req with observer attached. Streamed searches bypass the cache since the caller
// wants the events, not only the result.
func (ps *PlannerService) Stream(ctx context.Context, req engine.Request, observer search.Observer) (*search.Result, error) {
	res, err := ps.engine.ExecuteSearch(ctx, req, observer)
	if err != nil {
		return nil, err
	}
	ps.metrics.ObserveResult(res)
	return res, nil
}

func (ps *PlannerService) Scenario() *scenario.Scenario {
	return ps.engine.GetScenario()
}

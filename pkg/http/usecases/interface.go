package usecases

import (
	"context"

	"github.com/lintang-b-s/primplanner/pkg/engine"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/lintang-b-s/primplanner/pkg/scenario"
)

type PlannerEngine interface {
	ExecuteSearch(ctx context.Context, req engine.Request, observer search.Observer) (*search.Result, error)
	Sweep(ctx context.Context, reqs []engine.Request, numWorkers int) []engine.SweepResult
	GetScenario() *scenario.Scenario
}

type Metrics interface {
	ObserveResult(res *search.Result)
	CacheHit()
	CacheMiss()
}

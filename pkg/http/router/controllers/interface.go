package controllers

import (
	"context"

	"github.com/lintang-b-s/primplanner/pkg/engine"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/lintang-b-s/primplanner/pkg/scenario"
)

type PlannerService interface {
	Plan(ctx context.Context, req engine.Request) (*search.Result, bool, error)
	Sweep(ctx context.Context, weights []float64, base engine.Request) []engine.SweepResult
	Stream(ctx context.Context, req engine.Request, observer search.Observer) (*search.Result, error)
	Scenario() *scenario.Scenario
}

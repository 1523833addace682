package controllers

import (
	"github.com/lintang-b-s/primplanner/pkg/costfunction"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/lintang-b-s/primplanner/pkg/engine"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/lintang-b-s/primplanner/pkg/geo"
)

type planRequest struct {
	Algorithm           string  `json:"algorithm" validate:"required,oneof=astar idastar dfs"`
	Heuristic           string  `json:"heuristic" validate:"required,oneof=euclidean manhattan"`
	Weight              float64 `json:"weight" validate:"gte=0,lte=1000"`
	MaxNodes            int     `json:"max_nodes" validate:"gte=0"`
	MaxBoundEscalations int     `json:"max_bound_escalations" validate:"gte=0"`
	MaxDepth            int     `json:"max_depth" validate:"gte=0,lte=10000"`
}

func (pr planRequest) toEngineRequest() (engine.Request, error) {
	alg, err := search.ParseAlgorithm(pr.Algorithm)
	if err != nil {
		return engine.Request{}, err
	}
	h, err := costfunction.ParseHeuristic(pr.Heuristic)
	if err != nil {
		return engine.Request{}, err
	}
	return engine.Request{
		Algorithm:           alg,
		Heuristic:           h,
		Weight:              pr.Weight,
		MaxNodes:            pr.MaxNodes,
		MaxBoundEscalations: pr.MaxBoundEscalations,
		MaxDepth:            pr.MaxDepth,
	}, nil
}

type sweepRequest struct {
	Weights  []float64 `validate:"required,min=1,max=20,dive,gte=0,lte=1000"`
	MaxNodes int       `validate:"gte=0"`
}

type stateResponse struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation float64 `json:"orientation"`
	Velocity    float64 `json:"velocity"`
	TimeStep    int     `json:"time_step"`
}

func newStateResponses(states []da.State) []stateResponse {
	out := make([]stateResponse, len(states))
	for i, s := range states {
		out[i] = stateResponse{
			X:           s.GetX(),
			Y:           s.GetY(),
			Orientation: s.Orientation,
			Velocity:    s.Velocity,
			TimeStep:    s.TimeStep,
		}
	}
	return out
}

type planResponse struct {
	Algorithm      string          `json:"algorithm"`
	Heuristic      string          `json:"heuristic"`
	Weight         float64         `json:"weight"`
	Status         string          `json:"status"`
	Cost           float64         `json:"cost"`
	HeuristicValue float64         `json:"heuristic_value"`
	NodeCount      int             `json:"node_count"`
	Expansions     int             `json:"expansions"`
	Bounds         []float64       `json:"bounds,omitempty"`
	Primitives     []int           `json:"primitives"`
	Path           []stateResponse `json:"path"`
	Polyline       string          `json:"polyline"`
	ElapsedMs      float64         `json:"elapsed_ms"`
	Cached         bool            `json:"cached"`
}

func NewPlanResponse(res *search.Result, cached bool) planResponse {
	return planResponse{
		Algorithm:      res.Algorithm.String(),
		Heuristic:      res.Heuristic.String(),
		Weight:         res.Weight,
		Status:         res.Status.String(),
		Cost:           res.Cost,
		HeuristicValue: res.HeuristicValue,
		NodeCount:      res.NodeCount,
		Expansions:     res.Expansions,
		Bounds:         res.Bounds,
		Primitives:     res.PrimitiveIDs(),
		Path:           newStateResponses(res.Path),
		Polyline:       geo.PolylineFromStates(res.Path),
		ElapsedMs:      float64(res.Elapsed.Microseconds()) / 1000,
		Cached:         cached,
	}
}

type sweepItemResponse struct {
	planResponse
	Error string `json:"error,omitempty"`
}

func NewSweepResponse(results []engine.SweepResult) []sweepItemResponse {
	out := make([]sweepItemResponse, len(results))
	for i, sr := range results {
		if sr.Err != nil {
			out[i] = sweepItemResponse{
				planResponse: planResponse{
					Algorithm: sr.Request.Algorithm.String(),
					Heuristic: sr.Request.Heuristic.String(),
					Weight:    sr.Request.Weight,
				},
				Error: sr.Err.Error(),
			}
			continue
		}
		out[i] = sweepItemResponse{planResponse: NewPlanResponse(sr.Result, false)}
	}
	return out
}

type streamEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

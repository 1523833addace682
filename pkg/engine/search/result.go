package search

import (
	"time"

	"github.com/lintang-b-s/primplanner/pkg"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

type Status uint8

const (
	StatusSolved Status = iota
	StatusExhausted
	StatusBudgetExceeded
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "SOLVED"
	case StatusExhausted:
		return "EXHAUSTED"
	case StatusBudgetExceeded:
		return "BUDGET_EXCEEDED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result of one search invocation.
type Result struct {
	Algorithm  Algorithm             `json:"algorithm"`
	Heuristic  pkg.HeuristicType     `json:"heuristic"`
	Weight     float64               `json:"weight"`
	Status     Status                `json:"status"`
	Segments   [][]da.State          `json:"segments,omitempty"`
	Path       []da.State            `json:"path,omitempty"`
	Primitives []*da.MotionPrimitive `json:"-"`

	// NodeCount is the number of expansion calls, one per generated child.
	NodeCount int `json:"node_count"`
	// Expansions is the number of nodes popped from the fringe.
	Expansions int `json:"expansions"`

	Cost           float64       `json:"cost"`
	HeuristicValue float64       `json:"heuristic_value"`
	Bounds         []float64     `json:"bounds,omitempty"`
	Elapsed        time.Duration `json:"elapsed"`
}

func (r *Result) Solved() bool {
	return r.Status == StatusSolved
}

// PrimitiveIDs returns the ids of the solution's primitives, in order.
func (r *Result) PrimitiveIDs() []int {
	ids := make([]int, len(r.Primitives))
	for i, p := range r.Primitives {
		ids[i] = p.GetID()
	}
	return ids
}

// Terminal is the last state of the solution path.
func (r *Result) Terminal() (da.State, bool) {
	if len(r.Path) == 0 {
		return da.State{}, false
	}
	return r.Path[len(r.Path)-1], true
}

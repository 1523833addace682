package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/primplanner/pkg"
	"github.com/lintang-b-s/primplanner/pkg/automaton"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/lintang-b-s/primplanner/pkg/scenario"
	"github.com/lintang-b-s/primplanner/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func straightScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Name:              "straight",
		Goal:              da.NewRectangle(10, 0, 2, 2),
		VelocityTolerance: pkg.DEFAULT_VELOCITY_TOLERANCE,
	}
}

func newStraightEngine(t *testing.T, sc *scenario.Scenario) *Engine {
	t.Helper()
	aut, err := automaton.NewDefaultAutomaton([]*da.MotionPrimitive{
		automaton.StraightPrimitive(0, 2, 1, 0),
		automaton.StraightPrimitive(1, 4, 1, 0),
	})
	require.NoError(t, err)
	return NewEngine(sc, aut, zap.NewNop())
}

func TestExecuteSearch(t *testing.T) {
	enclosed := straightScenario()
	enclosed.Obstacles = []da.Rectangle{
		da.NewRectangle(8.5, 0, 1, 6),
		da.NewRectangle(11.5, 0, 1, 6),
		da.NewRectangle(10, 2.5, 4, 1),
		da.NewRectangle(10, -2.5, 4, 1),
	}

	testCases := []struct {
		name     string
		scenario *scenario.Scenario
		request  Request
		status   search.Status
		cost     float64
	}{
		{
			name:     "astar solves",
			scenario: straightScenario(),
			request:  Request{Algorithm: search.AStar, Heuristic: pkg.EUCLIDEAN, Weight: 1},
			status:   search.StatusSolved,
			cost:     10,
		},
		{
			name:     "idastar solves",
			scenario: straightScenario(),
			request:  Request{Algorithm: search.IDAStar, Heuristic: pkg.MANHATTAN, Weight: 1},
			status:   search.StatusSolved,
			cost:     10,
		},
		{
			name:     "astar enclosed goal",
			scenario: enclosed,
			request:  Request{Algorithm: search.AStar, Heuristic: pkg.EUCLIDEAN, Weight: 1},
			status:   search.StatusExhausted,
		},
		{
			name:     "idastar enclosed goal",
			scenario: enclosed,
			request:  Request{Algorithm: search.IDAStar, Heuristic: pkg.EUCLIDEAN, Weight: 2},
			status:   search.StatusExhausted,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			e := newStraightEngine(t, tt.scenario)
			res, err := e.ExecuteSearch(context.Background(), tt.request, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
			if tt.status == search.StatusSolved {
				assert.InDelta(t, tt.cost, res.Cost, 1e-9)
				terminal, _ := res.Terminal()
				assert.True(t, tt.scenario.Goal.ContainsPoint(terminal.Position))
			}
		})
	}
}

func TestExecuteSearchBadRequest(t *testing.T) {
	e := newStraightEngine(t, straightScenario())

	_, err := e.ExecuteSearch(context.Background(), Request{Algorithm: search.AStar, Weight: -1}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(util.ErrorCode(err), util.ErrBadParamInput))

	_, err = e.ExecuteSearch(context.Background(), Request{Algorithm: search.Algorithm(9), Weight: 1}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrNoSuchMotionPlanner)
}

func TestSweep(t *testing.T) {
	e := newStraightEngine(t, straightScenario())
	reqs := SweepRequests([]search.Algorithm{search.AStar, search.IDAStar}, []float64{1, 2, 3},
		[]pkg.HeuristicType{pkg.EUCLIDEAN, pkg.MANHATTAN}, Request{})
	require.Len(t, reqs, 12)

	results := e.Sweep(context.Background(), reqs, 4)
	require.Len(t, results, len(reqs))
	for i, sr := range results {
		require.NoError(t, sr.Err)
		assert.Equal(t, reqs[i], sr.Request)
		assert.True(t, sr.Result.Solved())
		assert.Equal(t, reqs[i].Weight, sr.Result.Weight)
	}
}

func TestNewEngineFromFile(t *testing.T) {
	dir := t.TempDir()
	aut, err := automaton.NewDefaultAutomaton([]*da.MotionPrimitive{automaton.StraightPrimitive(0, 2, 4, 0)})
	require.NoError(t, err)
	require.NoError(t, aut.WriteFile(filepath.Join(dir, "primitives.bz2")))

	yaml := `
goal:
  center_x: 10
  center_y: 0
  length: 2
  width: 2
primitives_file: primitives.bz2
`
	scenarioPath := filepath.Join(dir, "straight.yaml")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(yaml), 0644))

	e, err := NewEngineFromFile(scenarioPath, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "straight", e.GetScenario().Name)
	assert.Equal(t, 1, e.GetAutomaton().NumberOfPrimitives())

	res, err := e.ExecuteSearch(context.Background(), Request{Algorithm: search.AStar, Weight: 1}, nil)
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Len(t, res.Primitives, 5)
	terminal, _ := res.Terminal()
	assert.InDelta(t, 9.0, terminal.GetX(), 1e-9)
}

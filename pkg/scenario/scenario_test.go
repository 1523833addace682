package scenario

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintang-b-s/primplanner/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const straightYAML = `
name: straight
initial_state:
  x: 0
  y: 0
  velocity: 0
goal:
  center_x: 10
  center_y: 0
  length: 2
  width: 2
obstacles:
  - center_x: 5
    center_y: 6
    length: 30
    width: 9
boundary:
  center_x: 10
  center_y: 0
  length: 40
  width: 20
vehicle:
  length: 0
  width: 0
`

func TestRead(t *testing.T) {
	sc, err := Read(strings.NewReader(straightYAML), "yaml")
	require.NoError(t, err)

	assert.Equal(t, "straight", sc.Name)
	assert.Equal(t, 10.0, sc.Goal.CenterX)
	require.Len(t, sc.Obstacles, 1)
	require.NotNil(t, sc.Boundary)
	assert.Equal(t, 40.0, sc.Boundary.Length)
	assert.Greater(t, sc.CollisionResolution, 0.0)
	assert.Greater(t, sc.VelocityTolerance, 0.0)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		wantErr int
	}{
		{
			name:    "valid",
			yaml:    straightYAML,
			wantErr: 0,
		},
		{
			name: "degenerate goal",
			yaml: `
goal:
  center_x: 10
  length: 0
  width: 2
`,
			wantErr: 1,
		},
		{
			name: "start inside obstacle and outside boundary",
			yaml: `
initial_state:
  x: 50
goal:
  center_x: 10
  length: 2
  width: 2
obstacles:
  - center_x: 50
    center_y: 0
    length: 4
    width: 4
boundary:
  center_x: 10
  length: 40
  width: 20
`,
			wantErr: 2,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.yaml), "yaml")
			if tt.wantErr == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(util.ErrorCode(err), util.ErrBadParamInput))
			var uerr *util.Error
			require.True(t, errors.As(err, &uerr))
			assert.Len(t, multierr.Errors(errors.Unwrap(uerr)), tt.wantErr)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	sc := RandomScenario(7, DefaultRandomConfig())
	require.NoError(t, sc.Validate())

	path := filepath.Join(t.TempDir(), "random.yaml")
	require.NoError(t, sc.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sc.Name, loaded.Name)
	assert.Equal(t, sc.Goal, loaded.Goal)
	assert.Equal(t, sc.Obstacles, loaded.Obstacles)
	assert.Equal(t, *sc.Boundary, *loaded.Boundary)
}

func TestRandomScenario(t *testing.T) {
	cfg := DefaultRandomConfig()
	a := RandomScenario(42, cfg)
	b := RandomScenario(42, cfg)
	assert.Equal(t, a, b)

	start := a.Initial.State().Position
	for _, ob := range a.Obstacles {
		assert.False(t, ob.ContainsPoint(start))
		assert.False(t, ob.Rect().Intersects(a.Goal.Rect()))
	}
	assert.LessOrEqual(t, len(a.Obstacles), cfg.NumObstacles)
}

func TestLoadAutomatonGenerates(t *testing.T) {
	sc, err := Read(strings.NewReader(straightYAML), "yaml")
	require.NoError(t, err)
	aut, err := sc.LoadAutomaton(zap.NewNop())
	require.NoError(t, err)
	assert.Greater(t, aut.NumberOfPrimitives(), 0)
	assert.NotEmpty(t, aut.Successors(sc.Initial.State()))
}

// Package scenario describes one planning problem: where the vehicle starts, the goal region,
// the static obstacles and the motion primitives the vehicle may use.
package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lintang-b-s/primplanner/pkg"
	"github.com/lintang-b-s/primplanner/pkg/automaton"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/lintang-b-s/primplanner/pkg/spatialindex"
	"github.com/lintang-b-s/primplanner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	ErrInvalidScenario = errors.New("invalid scenario")
)

type InitialState struct {
	X           float64 `json:"x" mapstructure:"x"`
	Y           float64 `json:"y" mapstructure:"y"`
	Orientation float64 `json:"orientation" mapstructure:"orientation"`
	Velocity    float64 `json:"velocity" mapstructure:"velocity" validate:"gte=0"`
	TimeStep    int     `json:"time_step" mapstructure:"time_step" validate:"gte=0"`
}

func (is InitialState) State() da.State {
	return da.NewState(is.X, is.Y, is.Orientation, is.Velocity, is.TimeStep)
}

type Scenario struct {
	Name      string                    `json:"name" mapstructure:"name"`
	Initial   InitialState              `json:"initial_state" mapstructure:"initial_state"`
	Goal      da.Rectangle              `json:"goal" mapstructure:"goal"`
	Obstacles []da.Rectangle            `json:"obstacles" mapstructure:"obstacles" validate:"dive"`
	Boundary  *da.Rectangle             `json:"boundary,omitempty" mapstructure:"boundary" validate:"omitempty"`
	Vehicle   spatialindex.VehicleShape `json:"vehicle" mapstructure:"vehicle"`

	CollisionResolution float64 `json:"collision_resolution" mapstructure:"collision_resolution" validate:"gte=0"`
	VelocityTolerance   float64 `json:"velocity_tolerance" mapstructure:"velocity_tolerance" validate:"gte=0"`

	// PrimitivesFile is a bzip2 primitive library, relative paths are resolved against the
	// scenario file's directory. When empty, Generator builds the library.
	PrimitivesFile string                     `json:"primitives_file,omitempty" mapstructure:"primitives_file"`
	Generator      *automaton.GeneratorConfig `json:"primitive_generator,omitempty" mapstructure:"primitive_generator" validate:"omitempty"`

	dir string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("name", "scenario")
	v.SetDefault("collision_resolution", pkg.DEFAULT_COLLISION_RESOLUTION)
	v.SetDefault("velocity_tolerance", pkg.DEFAULT_VELOCITY_TOLERANCE)
	return v
}

// Load reads a scenario from a yaml, json or toml file, picked by extension.
func Load(path string) (*Scenario, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "read scenario %s", path)
	}
	sc, err := decode(v)
	if err != nil {
		return nil, err
	}
	if !v.IsSet("name") {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

// Read reads a scenario of the given config type ("yaml", "json", "toml") from in.
func Read(in io.Reader, configType string) (*Scenario, error) {
	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(in); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "read scenario")
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Scenario, error) {
	var sc Scenario
	if err := v.Unmarshal(&sc); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "decode scenario")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Save writes the scenario to path in the format given by its extension.
func (sc *Scenario) Save(path string) error {
	buf, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(buf)); err != nil {
		return err
	}
	return v.WriteConfigAs(path)
}

var validate = validator.New()

// Validate checks field constraints and the geometric sanity of the scenario. Every problem
// found is reported, combined into one error.
func (sc *Scenario) Validate() error {
	var errs error
	if err := validate.Struct(sc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = multierr.Append(errs, fmt.Errorf("%s: failed on '%s' (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
		} else {
			errs = multierr.Append(errs, err)
		}
	}

	start := sc.Initial.State().Position
	if sc.Boundary != nil {
		if !sc.Boundary.ContainsPoint(start) {
			errs = multierr.Append(errs, fmt.Errorf("initial state %v is outside the boundary", sc.Initial.State()))
		}
		if !sc.Boundary.Rect().Contains(sc.Goal.Rect()) {
			errs = multierr.Append(errs, errors.New("goal region is not inside the boundary"))
		}
	}
	for i, ob := range sc.Obstacles {
		if ob.ContainsPoint(start) {
			errs = multierr.Append(errs, fmt.Errorf("initial state lies inside obstacle %d", i))
		}
	}
	if errs != nil {
		return util.WrapErrorf(errs, util.ErrBadParamInput, "%s", ErrInvalidScenario.Error())
	}
	return nil
}

// PrimitivesPath resolves PrimitivesFile against the scenario's directory.
func (sc *Scenario) PrimitivesPath() string {
	if sc.PrimitivesFile == "" || filepath.IsAbs(sc.PrimitivesFile) || sc.dir == "" {
		return sc.PrimitivesFile
	}
	return filepath.Join(sc.dir, sc.PrimitivesFile)
}

// LoadAutomaton reads the primitive library or, without one, generates it.
func (sc *Scenario) LoadAutomaton(log *zap.Logger) (*automaton.Automaton, error) {
	if path := sc.PrimitivesPath(); path != "" {
		log.Info("Reading motion primitives from ", zap.String("primitivesFile", path))
		aut, err := automaton.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return aut, nil
	}

	cfg := automaton.DefaultGeneratorConfig()
	if sc.Generator != nil {
		cfg = *sc.Generator
	}
	prims := automaton.Generate(cfg)
	log.Info("Generated motion primitives", zap.Int("count", len(prims)))
	return automaton.NewAutomaton(prims, sc.VelocityTolerance)
}

// ObstacleIndex builds the r-tree over the scenario's obstacles.
func (sc *Scenario) ObstacleIndex(log *zap.Logger) *spatialindex.ObstacleIndex {
	index := spatialindex.NewObstacleIndex()
	index.Build(sc.Obstacles, log)
	return index
}

func (sc *Scenario) CollisionChecker(index *spatialindex.ObstacleIndex) *spatialindex.CollisionChecker {
	return spatialindex.NewCollisionChecker(index, sc.Boundary, sc.Vehicle, sc.CollisionResolution)
}

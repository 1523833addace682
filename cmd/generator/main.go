package main

import (
	"flag"
	"path/filepath"

	"github.com/lintang-b-s/primplanner/pkg"
	"github.com/lintang-b-s/primplanner/pkg/automaton"
	"github.com/lintang-b-s/primplanner/pkg/logger"
	"github.com/lintang-b-s/primplanner/pkg/scenario"
	"go.uber.org/zap"
)

var (
	primitivesOut = flag.String("primitives_out", "./data/primitives.bz2", "output primitive library")
	scenarioOut   = flag.String("scenario_out", "./data/scenario.yaml", "output scenario (yaml, json or toml)")
	seed          = flag.Uint64("seed", 1, "random scenario seed")
	numObstacles  = flag.Int("obstacles", 12, "number of obstacles in the random scenario")
	steps         = flag.Int("steps", 10, "states per primitive")
	timeStep      = flag.Float64("time_step", 0.1, "seconds between primitive states")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := automaton.DefaultGeneratorConfig()
	cfg.Steps = *steps
	cfg.TimeStep = *timeStep
	prims := automaton.Generate(cfg)
	aut, err := automaton.NewAutomaton(prims, pkg.DEFAULT_VELOCITY_TOLERANCE)
	if err != nil {
		panic(err)
	}
	if err := aut.WriteFile(*primitivesOut); err != nil {
		panic(err)
	}
	logger.Info("motion primitives written", zap.String("file", *primitivesOut),
		zap.Int("count", aut.NumberOfPrimitives()))

	rcfg := scenario.DefaultRandomConfig()
	rcfg.NumObstacles = *numObstacles
	sc := scenario.RandomScenario(*seed, rcfg)
	// scenario files resolve the primitive library relative to their own directory
	rel, err := filepath.Rel(filepath.Dir(*scenarioOut), *primitivesOut)
	if err != nil {
		rel, err = filepath.Abs(*primitivesOut)
		if err != nil {
			panic(err)
		}
	}
	sc.PrimitivesFile = rel
	if err := sc.Validate(); err != nil {
		panic(err)
	}
	if err := sc.Save(*scenarioOut); err != nil {
		panic(err)
	}
	logger.Info("scenario written", zap.String("file", *scenarioOut), zap.Int("obstacles", len(sc.Obstacles)))
}

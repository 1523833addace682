package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/primplanner/pkg"
	"github.com/lintang-b-s/primplanner/pkg/costfunction"
	"github.com/lintang-b-s/primplanner/pkg/engine"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/lintang-b-s/primplanner/pkg/logger"
	"github.com/lintang-b-s/primplanner/pkg/report"
	"github.com/lintang-b-s/primplanner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir    = flag.String("config", "./data/", "directory holding config.yaml")
	scenarioFile = flag.String("scenario", "", "scenario file, overrides SCENARIO_FILE")
	algorithm    = flag.String("algorithm", "", "astar, idastar or dfs, overrides DEFAULT_ALGORITHM")
	heuristic    = flag.String("heuristic", "", "euclidean or manhattan, overrides DEFAULT_HEURISTIC")
	weight       = flag.Float64("weight", -1, "heuristic weight, overrides DEFAULT_WEIGHT")
	sweep        = flag.Bool("sweep", false, "run A* and IDA* with both heuristics for weights 1, 2 and 3")
	out          = flag.String("out", "", "result file, overrides RESULT_FILE")
	logReport    = flag.Bool("log_report", false, "also write report lines to the log")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("planner failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	scenarioPath := override(*scenarioFile, viper.GetString("SCENARIO_FILE"))
	resultPath := override(*out, viper.GetString("RESULT_FILE"))

	plannerEngine, err := engine.NewEngineFromFile(scenarioPath, logger)
	if err != nil {
		return err
	}

	base, err := baseRequest()
	if err != nil {
		return err
	}

	fileSink, err := report.NewFileSink(resultPath, true)
	if err != nil {
		return err
	}
	defer fileSink.Close()
	sink := report.MultiSink{fileSink, report.NewWriterSink(os.Stdout)}
	if *logReport {
		sink = append(sink, report.NewLogSink(logger))
	}

	if err := report.WriteScenarioHeader(sink, plannerEngine.GetScenario().Name); err != nil {
		return err
	}

	var results []engine.SweepResult
	if *sweep {
		reqs := engine.SweepRequests([]search.Algorithm{search.AStar, search.IDAStar}, []float64{1, 2, 3},
			[]pkg.HeuristicType{pkg.EUCLIDEAN, pkg.MANHATTAN}, base)
		results = plannerEngine.Sweep(context.Background(), reqs, viper.GetInt("SWEEP_WORKERS"))
	} else {
		res, err := plannerEngine.ExecuteSearch(context.Background(), base, nil)
		results = []engine.SweepResult{{Request: base, Result: res, Err: err}}
	}

	failed, err := report.WriteSweep(sink, results)
	if err != nil {
		return err
	}
	logger.Info("results written", zap.String("resultFile", resultPath), zap.Int("searches", len(results)),
		zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d searches failed", failed, len(results))
	}
	return nil
}

func baseRequest() (engine.Request, error) {
	alg, err := search.ParseAlgorithm(override(*algorithm, viper.GetString("DEFAULT_ALGORITHM")))
	if err != nil {
		return engine.Request{}, err
	}
	h, err := costfunction.ParseHeuristic(override(*heuristic, viper.GetString("DEFAULT_HEURISTIC")))
	if err != nil {
		return engine.Request{}, err
	}
	w := viper.GetFloat64("DEFAULT_WEIGHT")
	if *weight >= 0 {
		w = *weight
	}
	return engine.Request{
		Algorithm:           alg,
		Heuristic:           h,
		Weight:              w,
		MaxNodes:            viper.GetInt("MAX_NODES"),
		MaxBoundEscalations: viper.GetInt("MAX_BOUND_ESCALATIONS"),
	}, nil
}

func override(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

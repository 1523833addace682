package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/primplanner/pkg/engine"
	"github.com/lintang-b-s/primplanner/pkg/http"
	"github.com/lintang-b-s/primplanner/pkg/http/usecases"
	"github.com/lintang-b-s/primplanner/pkg/logger"
	"github.com/lintang-b-s/primplanner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir    = flag.String("config", "./data/", "directory holding config.yaml")
	scenarioFile = flag.String("scenario", "", "scenario file, overrides SCENARIO_FILE")
	useRateLimit = flag.Bool("rate_limit", false, "enable the per client rate limiter")
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

	path := viper.GetString("SCENARIO_FILE")
	if *scenarioFile != "" {
		path = *scenarioFile
	}
	plannerEngine, err := engine.NewEngineFromFile(path, logger)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	plannerService, err := usecases.NewPlannerService(logger, plannerEngine, api.Metrics,
		viper.GetInt("RESULT_CACHE_SIZE"), viper.GetInt("SWEEP_WORKERS"))
	if err != nil {
		panic(err)
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	go func() {
		if err := api.Use(ctx, logger, *useRateLimit, plannerService); err != nil && err != context.Canceled {
			logger.Error("API stopped", zap.Error(err))
		}
	}()

	signal := http.GracefulShutdown()

	logger.Info("primplanner server stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}

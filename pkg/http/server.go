package http

import (
	"context"

	http_router "github.com/lintang-b-s/primplanner/pkg/http/router"
	"github.com/lintang-b-s/primplanner/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/primplanner/pkg/http/server"
	"github.com/lintang-b-s/primplanner/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log      *zap.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.SearchMetrics
}

// NewServer creates the server together with its prometheus registry, so the planner service
// and the /metrics endpoint share one set of collectors.
func NewServer(log *zap.Logger) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return &Server{
		Log:      log,
		Registry: registry,
		Metrics:  metrics.NewSearchMetrics(registry),
	}
}

// Use runs the API until ctx is cancelled or the listener fails.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	plannerService controllers.PlannerService,
) error {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log, s.Registry, s.Metrics)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(
			gctx, config, log,
			useRateLimit, plannerService,
		)
	})

	return g.Wait()
}

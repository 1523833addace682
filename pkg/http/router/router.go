package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/primplanner/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/primplanner/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/primplanner/pkg/http/server"
	"github.com/lintang-b-s/primplanner/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type API struct {
	log      *zap.Logger
	hub      *controllers.Hub
	registry *prometheus.Registry
	metrics  *metrics.SearchMetrics
}

func NewAPI(log *zap.Logger, registry *prometheus.Registry, searchMetrics *metrics.SearchMetrics) *API {
	return &API{log: log, registry: registry, metrics: searchMetrics}
}

//	@title			primplanner API
//	@version		1.0
//	@description	Motion primitive planner: A*, weighted A* and IDA* over a maneuver automaton.

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Handler(plannerService controllers.PlannerService, useRateLimit bool) (http.Handler, error) {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)
	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)
	router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(api.registry, promhttp.HandlerOpts{}))

	api.hub = controllers.NewHub(plannerService, api.log)
	router.GET("/ws/search", api.searchStream)

	group := router_helper.NewRouteGroup(router, "/api")
	plannerRoutes := controllers.New(plannerService, api.log)
	plannerRoutes.Routes(group)

	realIP, err := RealIP(viper.GetStringSlice("TRUSTED_PROXIES"))
	if err != nil {
		return nil, err
	}
	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		realIP, Heartbeat("healthz"), Logger(api.log), Labels(router, api.metrics.ObserveRequest)}
	if useRateLimit {
		limit, err := Limit(viper.GetFloat64("RATE_LIMIT_RPS"), viper.GetInt("RATE_LIMIT_BURST"),
			viper.GetInt("RATE_LIMIT_MAX_CLIENTS"))
		if err != nil {
			return nil, err
		}
		mwChain = append(mwChain, limit)
	}
	return alice.New(mwChain...).Then(router), nil
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	useRateLimit bool,
	plannerService controllers.PlannerService,
) error {
	log.Info("Run httprouter API")

	handler, err := api.Handler(plannerService, useRateLimit)
	if err != nil {
		return err
	}
	srv := http_server.New(ctx, handler, config)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.hub.CloseAll()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.Error("HTTP server stopped", zap.Error(err))
		return err

	case <-ctx.Done():
		log.Info("Context canceled, shutting down server")
		err := srv.Shutdown(context.Background())
		api.hub.CloseAll()
		if err != nil {
			return err
		}
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}

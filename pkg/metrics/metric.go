package metrics

import (
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SearchMetrics are the prometheus collectors of the planner service.
type SearchMetrics struct {
	searchTotal    *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	nodeCount      *prometheus.HistogramVec
	boundRaises    prometheus.Histogram
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	httpRequests   *prometheus.CounterVec
}

// NewSearchMetrics registers every collector on reg.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	factory := promauto.With(reg)
	return &SearchMetrics{
		searchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_search_total",
			Help: "Total searches by algorithm and final status",
		}, []string{"algorithm", "status"}),
		searchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "planner_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}, []string{"algorithm"}),
		nodeCount: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "planner_search_node_count",
			Help:    "Number of generated nodes per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"algorithm"}),
		boundRaises: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_idastar_bound_raises",
			Help:    "Number of IDA* limit escalations per search",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 500, 1000},
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "planner_result_cache_hits_total",
			Help: "Total result cache hits",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "planner_result_cache_misses_total",
			Help: "Total result cache misses",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_http_requests_total",
			Help: "Total HTTP requests by path and status code",
		}, []string{"path", "code"}),
	}
}

func (m *SearchMetrics) ObserveResult(res *search.Result) {
	alg := res.Algorithm.String()
	m.searchTotal.WithLabelValues(alg, res.Status.String()).Inc()
	m.searchDuration.WithLabelValues(alg).Observe(res.Elapsed.Seconds())
	m.nodeCount.WithLabelValues(alg).Observe(float64(res.NodeCount))
	if res.Algorithm == search.IDAStar && len(res.Bounds) > 0 {
		m.boundRaises.Observe(float64(len(res.Bounds) - 1))
	}
}

func (m *SearchMetrics) CacheHit() {
	m.cacheHits.Inc()
}

func (m *SearchMetrics) CacheMiss() {
	m.cacheMisses.Inc()
}

func (m *SearchMetrics) ObserveRequest(path, code string) {
	m.httpRequests.WithLabelValues(path, code).Inc()
}

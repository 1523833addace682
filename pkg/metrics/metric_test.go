package metrics

import (
	"testing"
	"time"

	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSearchMetrics(reg)

	m.ObserveResult(&search.Result{Algorithm: search.AStar, Status: search.StatusSolved, NodeCount: 10,
		Elapsed: time.Millisecond})
	m.ObserveResult(&search.Result{Algorithm: search.IDAStar, Status: search.StatusExhausted, NodeCount: 40,
		Bounds: []float64{1, 2, 3}})
	m.CacheHit()
	m.CacheMiss()
	m.CacheMiss()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.searchTotal.WithLabelValues("astar", "SOLVED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searchTotal.WithLabelValues("idastar", "EXHAUSTED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheMisses))

	n, err := testutil.GatherAndCount(reg, "planner_idastar_bound_raises")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

package router

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/primplanner/pkg/automaton"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"github.com/lintang-b-s/primplanner/pkg/engine"
	"github.com/lintang-b-s/primplanner/pkg/http/usecases"
	"github.com/lintang-b-s/primplanner/pkg/metrics"
	"github.com/lintang-b-s/primplanner/pkg/scenario"
	"github.com/lintang-b-s/primplanner/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, _ := newTestServerWithRegistry(t)
	return srv
}

func newTestServerWithRegistry(t *testing.T) (*httptest.Server, *prometheus.Registry) {
	t.Helper()
	util.SetDefaults()

	aut, err := automaton.NewDefaultAutomaton([]*da.MotionPrimitive{
		automaton.StraightPrimitive(0, 2, 1, 0),
		automaton.StraightPrimitive(1, 4, 1, 0),
	})
	require.NoError(t, err)
	sc := &scenario.Scenario{Name: "straight", Goal: da.NewRectangle(10, 0, 2, 2)}
	e := engine.NewEngine(sc, aut, zap.NewNop())

	registry := prometheus.NewRegistry()
	m := metrics.NewSearchMetrics(registry)
	ps, err := usecases.NewPlannerService(zap.NewNop(), e, m, 16, 2)
	require.NoError(t, err)

	api := NewAPI(zap.NewNop(), registry, m)
	handler, err := api.Handler(ps, false)
	require.NoError(t, err)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, registry
}

type planEnvelope struct {
	Data struct {
		Status     string    `json:"status"`
		Cost       float64   `json:"cost"`
		NodeCount  int       `json:"node_count"`
		Primitives []int     `json:"primitives"`
		Bounds     []float64 `json:"bounds"`
		Polyline   string    `json:"polyline"`
		Cached     bool      `json:"cached"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func TestPlanEndpoint(t *testing.T) {
	srv := newTestServer(t)

	testCases := []struct {
		name       string
		query      string
		statusCode int
		status     string
		primitives []int
	}{
		{
			name:       "astar",
			query:      "algorithm=astar&heuristic=euclidean&weight=1",
			statusCode: http.StatusOK,
			status:     "SOLVED",
			primitives: []int{1, 1, 0},
		},
		{
			name:       "idastar manhattan",
			query:      "algorithm=idastar&heuristic=manhattan&weight=1",
			statusCode: http.StatusOK,
			status:     "SOLVED",
			primitives: []int{1, 1, 0},
		},
		{
			name:       "defaults",
			query:      "",
			statusCode: http.StatusOK,
			status:     "SOLVED",
			primitives: []int{1, 1, 0},
		},
		{
			name:       "budget",
			query:      "algorithm=astar&max_nodes=1",
			statusCode: http.StatusOK,
			status:     "BUDGET_EXCEEDED",
		},
		{
			name:       "unknown algorithm",
			query:      "algorithm=bfs",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "negative weight",
			query:      "weight=-2",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "weight not a number",
			query:      "weight=abc",
			statusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var env planEnvelope
			code := getJSON(t, srv.URL+"/api/plan?"+tt.query, &env)
			require.Equal(t, tt.statusCode, code)
			if code != http.StatusOK {
				assert.NotEmpty(t, env.Error.Message)
				return
			}
			assert.Equal(t, tt.status, env.Data.Status)
			if tt.status == "SOLVED" {
				assert.Equal(t, tt.primitives, env.Data.Primitives)
				assert.InDelta(t, 10.0, env.Data.Cost, 1e-9)
				assert.NotEmpty(t, env.Data.Polyline)
			}
		})
	}
}

func TestSweepEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var env struct {
		Data []struct {
			Algorithm string  `json:"algorithm"`
			Heuristic string  `json:"heuristic"`
			Weight    float64 `json:"weight"`
			Status    string  `json:"status"`
		} `json:"data"`
	}
	code := getJSON(t, srv.URL+"/api/sweep?weights=1,2,3", &env)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, env.Data, 12)
	assert.Equal(t, "astar", env.Data[0].Algorithm)
	assert.Equal(t, "idastar", env.Data[11].Algorithm)
	for _, item := range env.Data {
		assert.Equal(t, "SOLVED", item.Status)
	}

	code = getJSON(t, srv.URL+"/api/sweep?weights=", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealthzAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	getJSON(t, srv.URL+"/api/plan?algorithm=astar", nil)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `planner_search_total{algorithm="astar",status="SOLVED"} 1`)
}

func TestRequestMetricsUseRouteTemplates(t *testing.T) {
	srv, registry := newTestServerWithRegistry(t)

	for i := 0; i < 50; i++ {
		resp, err := http.Get(fmt.Sprintf("%s/junk/%d", srv.URL, i))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
	getJSON(t, srv.URL+"/api/plan?algorithm=astar", nil)

	series, err := testutil.GatherAndCount(registry, "planner_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `planner_http_requests_total{code="404",path="other"} 50`)
	assert.Contains(t, string(body), `planner_http_requests_total{code="200",path="/api/plan"} 1`)
}

func TestSearchStream(t *testing.T) {
	srv := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/search"
	conn, br, _, err := ws.Dial(ctx, wsURL)
	require.NoError(t, err)
	defer conn.Close()

	var rd io.Reader = conn
	if br != nil {
		rd = io.MultiReader(br, conn)
	}
	rw := struct {
		io.Reader
		io.Writer
	}{rd, conn}

	req := `{"algorithm":"idastar","heuristic":"euclidean","weight":1}`
	require.NoError(t, wsutil.WriteClientText(conn, []byte(req)))

	types := map[string]int{}
	var result planEnvelope
	for {
		msg, err := wsutil.ReadServerText(rw)
		require.NoError(t, err)
		var ev struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg, &ev))
		types[ev.Type]++
		if ev.Type == "result" {
			require.NoError(t, json.Unmarshal(ev.Data, &result.Data))
			break
		}
	}

	assert.Equal(t, "SOLVED", result.Data.Status)
	assert.Equal(t, []float64{10, 12.5, 13}, result.Data.Bounds)
	assert.Equal(t, 2, types["bound_raised"])
	assert.Equal(t, 1, types["solution"])
	assert.Greater(t, types["frontier"], 0)

	require.NoError(t, wsutil.WriteClientText(conn, []byte(`{"algorithm":"nope"}`)))
	msg, err := wsutil.ReadServerText(rw)
	require.NoError(t, err)
	assert.Contains(t, string(msg), "Bad Request")
}

package metrics

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/search"
)

func histogram(t *testing.T, vec *prometheus.HistogramVec, label string) *dto.Histogram {
	t.Helper()
	var m dto.Metric
	require.NoError(t, vec.WithLabelValues(label).(prometheus.Metric).Write(&m))

	return m.GetHistogram()
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		res  *search.Result
		err  error
		want string
	}{
		{"found", &search.Result{Reachable: true}, nil, OutcomeFound},
		{"unreachable", &search.Result{}, nil, OutcomeUnreachable},
		{"limit", nil, search.ErrExpansionLimit, OutcomeAborted},
		{"canceled", nil, context.Canceled, OutcomeAborted},
		{"deadline", nil, context.DeadlineExceeded, OutcomeAborted},
		{"unknown node", nil, core.ErrUnknownNode, OutcomeError},
		{"hook", nil, errors.New("boom"), OutcomeError},
		{"nil result", nil, nil, OutcomeError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Outcome(tc.res, tc.err))
		})
	}
}

func TestRecorder_ObservesRuns(t *testing.T) {
	r := New("lvpath")
	g, err := builder.RomaniaGraph()
	require.NoError(t, err)

	e, err := search.NewEngine(g, search.WithObserver(r))
	require.NoError(t, err)

	_, err = e.Run(search.CostOptimal, "Arad", "Bucharest")
	require.NoError(t, err)
	_, err = e.Run(search.Breadth, "Arad", "Bucharest")
	require.NoError(t, err)
	_, err = e.Run(search.CostOptimal, "Arad", "Nowhere")
	require.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = e.Run(search.CostOptimal, "Arad", "Bucharest", search.WithMaxExpansions(2))
	require.ErrorIs(t, err, search.ErrExpansionLimit)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("astar", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("bfs", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("astar", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("astar", OutcomeAborted)))

	cost := histogram(t, r.PathCost, "astar")
	assert.Equal(t, uint64(1), cost.GetSampleCount())
	assert.Equal(t, 418.0, cost.GetSampleSum())

	exp := histogram(t, r.Expansions, "astar")
	assert.Equal(t, uint64(1), exp.GetSampleCount())
	assert.Equal(t, 6.0, exp.GetSampleSum())

	assert.Equal(t, uint64(3), histogram(t, r.DurationSeconds, "astar").GetSampleCount())
}

func TestRecorder_Unreachable(t *testing.T) {
	r := New("lvpath")
	g := core.NewGraph()
	require.NoError(t, g.AddNode("a", 0))
	require.NoError(t, g.AddNode("b", 0))

	res, err := search.Search(g, search.Greedy, "a", "b", search.WithObserver(r))
	require.NoError(t, err)
	require.False(t, res.Reachable)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("greedy", OutcomeUnreachable)))
	assert.Zero(t, histogram(t, r.PathCost, "greedy").GetSampleCount())
}

func TestRecorder_WriteText(t *testing.T) {
	r := New("lvpath")
	r.ObserveRun(search.Depth, &search.Result{Reachable: true, Cost: 607}, nil, 0)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, `lvpath_search_runs_total{outcome="found",strategy="dfs"} 1`)
	assert.Contains(t, out, "# TYPE lvpath_search_path_cost histogram")
	assert.Contains(t, out, `lvpath_search_path_cost_sum{strategy="dfs"} 607`)
}

func TestRecorder_SeparateRegistries(t *testing.T) {
	a, b := New("lvpath"), New("lvpath")
	a.ObserveRun(search.Breadth, &search.Result{}, nil, 0)

	assert.Equal(t, 1, testutil.CollectAndCount(a.RunsTotal))
	assert.Equal(t, 0, testutil.CollectAndCount(b.RunsTotal))
	assert.NotSame(t, a.Registry(), b.Registry())
}

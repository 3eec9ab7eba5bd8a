package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/graphfile"
	"github.com/katalvlaran/lvpath/search"
)

// execute runs a fresh root command and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func romaniaFile(t *testing.T) string {
	t.Helper()
	g, err := builder.RomaniaGraph()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "romania.yaml")
	require.NoError(t, graphfile.Save(path, g))

	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDemo_Text(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)

	want := `== bfs ==
Path: Arad -> Sibiu -> Fagaras -> Bucharest
Total Cost: 450

== dfs ==
Path: Arad -> Zerind -> Oradea -> Sibiu -> Fagaras -> Bucharest
Total Cost: 607

== greedy ==
Path: Arad -> Sibiu -> Fagaras -> Bucharest
Total Cost: 450

== astar ==
Path: Arad -> Sibiu -> Rimnicu Vilcea -> Pitesti -> Bucharest
Total Cost: 418
`
	assert.Equal(t, want, out)
}

func TestDemo_Trace(t *testing.T) {
	out, _, err := execute(t, "demo", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "Expanded (6): Arad -> Sibiu -> Rimnicu Vilcea -> Fagaras -> Pitesti -> Bucharest")
	assert.Contains(t, out, "Expanded (4): Arad -> Sibiu -> Fagaras -> Bucharest")
}

func TestSearch_SingleStrategy(t *testing.T) {
	path := romaniaFile(t)

	out, _, err := execute(t, "search", "--graph", path, "--from", "Arad", "--to", "Bucharest")
	require.NoError(t, err)
	assert.Equal(t, "Path: Arad -> Sibiu -> Rimnicu Vilcea -> Pitesti -> Bucharest\nTotal Cost: 418\n", out)

	out, _, err = execute(t, "search", "-g", path, "--from", "Arad", "--to", "Bucharest", "-s", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Cost: 450")
	assert.NotContains(t, out, "==")
}

func TestSearch_JSON(t *testing.T) {
	path := romaniaFile(t)

	out, _, err := execute(t, "search", "--graph", path, "--from", "Arad", "--to", "Bucharest", "--all", "-o", "json")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.NotEmpty(t, rep.RunID)
	require.Len(t, rep.Results, 4)
	assert.Equal(t, search.CostOptimal, rep.Results[3].Strategy)
	assert.Equal(t, int64(418), rep.Results[3].Cost)
	assert.Equal(t, 6, rep.Results[3].Stats.Expansions)
	assert.Equal(t, int64(607), rep.Results[1].Cost)
	assert.Contains(t, out, `"strategy": "greedy"`)
}

func TestSearch_Unreachable(t *testing.T) {
	path := writeFile(t, "islands.yaml", `
nodes: [{id: a}, {id: b}, {id: c}]
edges: [{from: a, to: b, weight: 1}]
`)
	out, _, err := execute(t, "search", "--graph", path, "--from", "a", "--to", "c", "-s", "greedy")
	require.NoError(t, err)
	assert.Equal(t, "No path found.\n", out)
}

func TestSearch_Errors(t *testing.T) {
	path := romaniaFile(t)

	_, _, err := execute(t, "search", "--graph", path, "--from", "Arad", "--to", "Nowhere")
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	_, _, err = execute(t, "search", "--graph", path, "--from", "Arad", "--to", "Bucharest", "-s", "beam")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, _, err = execute(t, "search", "--graph", path, "--from", "Arad", "--to", "Bucharest", "-s", "bfs", "--all")
	assert.Error(t, err)

	_, _, err = execute(t, "search", "--from", "Arad", "--to", "Bucharest")
	assert.Error(t, err)

	_, _, err = execute(t, "search", "--graph", filepath.Join(t.TempDir(), "none.yaml"), "--from", "a", "--to", "b")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "search", "--graph", path, "--from", "Arad", "--to", "Bucharest", "--max-expansions", "-1")
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestDemo_ExpansionLimit(t *testing.T) {
	_, _, err := execute(t, "demo", "--max-expansions", "1")
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
}

func TestDemo_Metrics(t *testing.T) {
	_, stderr, err := execute(t, "demo", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, `lvpath_search_runs_total{outcome="found",strategy="astar"} 1`)
	assert.Contains(t, stderr, `lvpath_search_path_cost_sum{strategy="dfs"} 607`)
}

func TestDemo_DebugLog(t *testing.T) {
	t.Setenv("LVPATH_LOG_FORMAT", "json")

	_, stderr, err := execute(t, "--log-level", "debug", "demo", "--to", "Sibiu")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"expanding node"`)
	assert.Contains(t, stderr, `"command":"demo"`)

	var first map[string]any
	line, _, _ := strings.Cut(stderr, "\n")
	require.NoError(t, json.Unmarshal([]byte(line), &first))
	assert.NotEmpty(t, first["run_id"])
}

func TestSearch_DebugLogsGraphShape(t *testing.T) {
	t.Setenv("LVPATH_LOG_FORMAT", "json")
	graph := romaniaFile(t)

	_, stderr, err := execute(t, "--log-level", "debug", "search", "--graph", graph, "--from", "Arad", "--to", "Bucharest")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"graph loaded"`)
	assert.Contains(t, stderr, `"nodes":14`)
	assert.Contains(t, stderr, `"edges":17`)

	_, stderr, err = execute(t, "traverse", "--graph", graph, "--from", "Arad")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "graph loaded")
}

func TestConfigFile_AndFlagOverride(t *testing.T) {
	graph := romaniaFile(t)
	cfg := writeFile(t, "lvpath.yaml", "search:\n  strategy: greedy\noutput:\n  format: json\n")

	out, _, err := execute(t, "--config", cfg, "search", "--graph", graph, "--from", "Arad", "--to", "Bucharest")
	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Results, 1)
	assert.Equal(t, search.Greedy, rep.Results[0].Strategy)

	out, _, err = execute(t, "--config", cfg, "-o", "text", "search", "--graph", graph, "--from", "Arad", "--to", "Bucharest")
	require.NoError(t, err)
	assert.Equal(t, "Path: Arad -> Sibiu -> Fagaras -> Bucharest\nTotal Cost: 450\n", out)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("LVPATH_OUTPUT_FORMAT", "csv")

	_, _, err := execute(t, "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestTraverse(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "path.yaml")
	require.NoError(t, graphfile.Save(path, g))

	out, _, err := execute(t, "traverse", "--graph", path, "--from", "2")
	require.NoError(t, err)
	assert.Equal(t, "Order: 2 -> 1 -> 3 -> 0\n", out)

	out, _, err = execute(t, "traverse", "--graph", path, "--from", "0", "-s", "dfs", "-o", "json")
	require.NoError(t, err)
	var rep traversalReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, search.Depth, rep.Strategy)
	assert.Equal(t, []string{"0", "1", "2", "3"}, rep.Order)
	assert.NotEmpty(t, rep.RunID)

	_, _, err = execute(t, "traverse", "--graph", path, "--from", "9")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "romania.yaml")
	_, _, err := execute(t, "export", "--out", path)
	require.NoError(t, err)

	g, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14, g.NodeCount())
	assert.Equal(t, 17, g.EdgeCount())

	out, _, err := execute(t, "export", "--out", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "id: Arad")
	assert.Contains(t, out, "heuristic: 366")
}

func TestWriteResults_UnreachableTrace(t *testing.T) {
	var buf bytes.Buffer
	res := &search.Result{Strategy: search.Breadth, Expanded: []string{"a", "b"}}
	require.NoError(t, writeResults(&buf, "text", "id", []*search.Result{res}, true))
	assert.Equal(t, "No path found.\nExpanded (2): a -> b\n", buf.String())
}

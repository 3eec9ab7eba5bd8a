package graphfile_test

import (
	"bytes"
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

const sample = `
directed: false
nodes:
  - id: Arad
    heuristic: 366
  - id: Sibiu
    heuristic: 253
  - id: Fagaras
    heuristic: 176
  - id: Bucharest
edges:
  - {from: Arad, to: Sibiu, weight: 140}
  - {from: Sibiu, to: Fagaras, weight: 99}
  - {from: Fagaras, to: Bucharest, weight: 211}
`

func TestDecode_YAML(t *testing.T) {
	g, err := graphfile.Decode(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"Arad", "Sibiu", "Fagaras", "Bucharest"}, g.NodeIDs())
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.Directed())

	res, err := search.Search(g, search.CostOptimal, "Arad", "Bucharest")
	require.NoError(t, err)
	assert.Equal(t, int64(450), res.Cost)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"directed": true, "nodes": [{"id": "a"}, {"id": "b", "heuristic": 2}], "edges": [{"from": "a", "to": "b", "weight": 5}]}`
	g, err := graphfile.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "   \n", graphfile.ErrEmptyDocument},
		{"unknown field", "nodes: []\ncolour: red\n", graphfile.ErrMalformed},
		{"bad type", "nodes: [{id: a, heuristic: lots}]\n", graphfile.ErrMalformed},
		{"unknown endpoint", "nodes: [{id: a}]\nedges: [{from: a, to: b, weight: 1}]\n", core.ErrUnknownNode},
		{"negative weight", "nodes: [{id: a}, {id: b}]\nedges: [{from: a, to: b, weight: -1}]\n", core.ErrInvalidWeight},
		{"negative heuristic", "nodes: [{id: a, heuristic: -4}]\n", core.ErrNegativeHeuristic},
		{"strict duplicate", "strict: true\nnodes: [{id: a}, {id: a}]\n", core.ErrDuplicateNode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphfile.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncodeDecode_PreservesOrder(t *testing.T) {
	g, err := builder.RomaniaGraph()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, g))
	assert.Contains(t, buf.String(), "id: Rimnicu Vilcea")

	back, err := graphfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), back.Nodes())
	assert.Equal(t, g.Edges(), back.Edges())

	row, err := back.NeighborList("Arad")
	require.NoError(t, err)
	assert.Equal(t, "Zerind", row[0].ID)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.yaml")

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithManhattanHeuristic(2, 2, 1)},
		builder.Grid(3, 3))
	require.NoError(t, err)
	require.NoError(t, graphfile.Save(path, g))

	back, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.Stats(), back.Stats())

	_, err = graphfile.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

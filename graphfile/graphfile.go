// Package graphfile reads and writes lvpath graph definitions as YAML.
//
// A document lists nodes before edges; JSON documents are accepted too, since
// JSON is valid YAML:
//
//	directed: false
//	strict: false
//	nodes:
//	  - id: Arad
//	    heuristic: 366
//	  - id: Sibiu
//	    heuristic: 253
//	edges:
//	  - from: Arad
//	    to: Sibiu
//	    weight: 140
//
// Decoding replays the document through core.Graph.AddNode/AddEdge, so the
// graph's own validation (unknown endpoints, negative weights, strict
// duplicates) applies unchanged and its sentinels are preserved in the
// returned error chain.
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/core"
)

// MaxFileSize is the largest graph document Load and Decode accept (8MB).
const MaxFileSize = 8 << 20

var (
	// ErrEmptyDocument is returned for a document without any content.
	ErrEmptyDocument = errors.New("graphfile: empty document")

	// ErrMalformed is returned when the document is not a valid graph definition.
	ErrMalformed = errors.New("graphfile: malformed document")

	// ErrTooLarge is returned when the document exceeds MaxFileSize.
	ErrTooLarge = errors.New("graphfile: document too large")
)

// Document is the serialized form of a graph.
type Document struct {
	Directed bool      `yaml:"directed" json:"directed"`
	Strict   bool      `yaml:"strict,omitempty" json:"strict,omitempty"`
	Nodes    []NodeDoc `yaml:"nodes" json:"nodes"`
	Edges    []EdgeDoc `yaml:"edges" json:"edges"`
}

// NodeDoc is one node entry.
type NodeDoc struct {
	ID        string `yaml:"id" json:"id"`
	Heuristic int64  `yaml:"heuristic,omitempty" json:"heuristic,omitempty"`
}

// EdgeDoc is one edge entry.
type EdgeDoc struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight" json:"weight"`
}

// Decode reads one graph document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("graphfile: read: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxFileSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return doc.Graph()
}

// Load opens path and decodes it.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Graph builds a core.Graph from the document.
func (d *Document) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if d.Directed {
		opts = append(opts, core.WithDirected())
	}
	if d.Strict {
		opts = append(opts, core.WithStrictNodes())
	}
	g := core.NewGraph(opts...)

	for i, n := range d.Nodes {
		if err := g.AddNode(n.ID, n.Heuristic); err != nil {
			return nil, fmt.Errorf("graphfile: nodes[%d]: %w", i, err)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph snapshots g into a Document, preserving insertion order.
func FromGraph(g *core.Graph) *Document {
	doc := &Document{
		Directed: g.Directed(),
		Strict:   g.Strict(),
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeDoc{ID: n.ID, Heuristic: n.Heuristic})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Encode writes g as YAML to w.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// Save writes g as YAML to path, replacing any existing file.
func Save(path string, g *core.Graph) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("graphfile: write %s: %w", path, err)
	}

	return nil
}

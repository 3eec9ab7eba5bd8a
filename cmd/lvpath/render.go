package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvpath/search"
)

const arrow = " -> "

// report is the JSON envelope for search results.
type report struct {
	RunID   string           `json:"run_id"`
	Results []*search.Result `json:"results"`
}

type traversal struct {
	Strategy search.Strategy `json:"strategy"`
	Source   string          `json:"source"`
	Order    []string        `json:"order"`
}

type traversalReport struct {
	RunID string `json:"run_id"`
	traversal
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// writeResults renders results as text or JSON. Text output prefixes each
// result with a strategy header when there is more than one.
func writeResults(w io.Writer, format, runID string, results []*search.Result, trace bool) error {
	if format == "json" {
		return writeJSON(w, report{RunID: runID, Results: results})
	}

	var b strings.Builder
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "== %s ==\n", res.Strategy)
		}
		if res.Reachable {
			fmt.Fprintf(&b, "Path: %s\n", strings.Join(res.Path, arrow))
			fmt.Fprintf(&b, "Total Cost: %d\n", res.Cost)
		} else {
			b.WriteString("No path found.\n")
		}
		if trace {
			fmt.Fprintf(&b, "Expanded (%d): %s\n", len(res.Expanded), strings.Join(res.Expanded, arrow))
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func writeTraversal(w io.Writer, format, runID string, t traversal) error {
	if format == "json" {
		return writeJSON(w, traversalReport{RunID: runID, traversal: t})
	}
	_, err := fmt.Fprintf(w, "Order: %s\n", strings.Join(t.Order, arrow))

	return err
}

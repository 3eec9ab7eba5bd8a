package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/core"
)

// Reconstruct walks parent links back from goal to source, reverses them
// into source→goal order, and sums the weight of every consecutive arc as
// stored in g. Cached frontier costs are never trusted.
//
// parent maps a node to its predecessor; source has no entry.
//
// Returns ErrBrokenPath if the chain does not end at source, loops, or uses
// an arc that g does not contain, and ErrCostOverflow if the weights sum past
// math.MaxInt64.
func Reconstruct(g *core.Graph, parent map[string]string, source, goal string) ([]string, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	path := []string{goal}
	for cur := goal; cur != source; {
		prev, ok := parent[cur]
		if !ok {
			return nil, 0, fmt.Errorf("%w: chain from %q stops at %q before %q", ErrBrokenPath, goal, cur, source)
		}
		if len(path) > len(parent) {
			return nil, 0, fmt.Errorf("%w: predecessor cycle through %q", ErrBrokenPath, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get source → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	var cost int64
	for i := 1; i < len(path); i++ {
		w, ok := g.EdgeWeight(path[i-1], path[i])
		if !ok {
			return nil, 0, fmt.Errorf("%w: no edge %s→%s", ErrBrokenPath, path[i-1], path[i])
		}
		if w > math.MaxInt64-cost {
			return nil, 0, fmt.Errorf("%w: at %s→%s", ErrCostOverflow, path[i-1], path[i])
		}
		cost += w
	}

	return path, cost, nil
}

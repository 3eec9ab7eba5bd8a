package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvpath/core"
)

// Engine runs searches over one graph. It holds no per-run state, so
// concurrent Run calls on one Engine are safe as long as the graph is not
// mutated meanwhile.
type Engine struct {
	g    *core.Graph
	base []Option
}

// NewEngine binds g with default options applied to every run.
// Returns ErrNilGraph for a nil graph, or ErrOptionViolation if any default
// option is invalid.
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{g: g, base: opts}, nil
}

// Search is a one-shot convenience wrapper around NewEngine and Run.
func Search(g *core.Graph, strategy Strategy, source, goal string, opts ...Option) (*Result, error) {
	e, err := NewEngine(g)
	if err != nil {
		return nil, err
	}

	return e.Run(strategy, source, goal, opts...)
}

// Traverse is a one-shot convenience wrapper around NewEngine and
// (*Engine).Traverse.
func Traverse(g *core.Graph, strategy Strategy, source string, opts ...Option) ([]string, error) {
	e, err := NewEngine(g)
	if err != nil {
		return nil, err
	}

	return e.Traverse(strategy, source, opts...)
}

// Run searches from source to goal with the given strategy. Per-call options
// override the engine defaults.
//
// Returns:
//   - ErrOptionViolation for bad options.
//   - ErrUnknownStrategy for an out-of-range strategy.
//   - core.ErrUnknownNode if source or goal is absent; no search starts.
//   - ErrExpansionLimit, a context error, or a wrapped OnExpand error if the
//     run is aborted.
//   - ErrCostOverflow if the found path's weights sum past math.MaxInt64.
//
// An unreachable goal is reported as Result.Reachable == false with a nil error.
func (e *Engine) Run(strategy Strategy, source, goal string, opts ...Option) (*Result, error) {
	o, err := e.options(opts)
	if err != nil {
		return nil, err
	}
	pol, err := policyFor(strategy)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := e.run(o, strategy, pol, source, goal)
	if o.Observer != nil {
		o.Observer.ObserveRun(strategy, res, err, time.Since(start))
	}

	return res, err
}

// Traverse exhausts the frontier from source without a goal and returns the
// acceptance order. Greedy and CostOptimal use the stored heuristics for
// ordering only.
func (e *Engine) Traverse(strategy Strategy, source string, opts ...Option) ([]string, error) {
	o, err := e.options(opts)
	if err != nil {
		return nil, err
	}
	pol, err := policyFor(strategy)
	if err != nil {
		return nil, err
	}
	h, err := e.g.Heuristic(source)
	if err != nil {
		return nil, fmt.Errorf("%w: source %q", core.ErrUnknownNode, source)
	}

	r := e.newRunner(o, strategy, pol, source, "", h)
	if _, err = r.loop(); err != nil {
		return nil, err
	}

	return r.st.expanded, nil
}

// options merges engine defaults with per-call overrides.
func (e *Engine) options(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range e.base {
		opt(&o)
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func (e *Engine) run(o Options, strategy Strategy, pol policy, source, goal string) (*Result, error) {
	h, err := e.g.Heuristic(source)
	if err != nil {
		return nil, fmt.Errorf("%w: source %q", core.ErrUnknownNode, source)
	}
	if !e.g.HasNode(goal) {
		return nil, fmt.Errorf("%w: goal %q", core.ErrUnknownNode, goal)
	}

	r := e.newRunner(o, strategy, pol, source, goal, h)
	found, err := r.loop()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Strategy: strategy,
		Source:   source,
		Goal:     goal,
		Expanded: r.st.expanded,
		Stats:    r.st.stats,
	}
	if !found {
		r.log.Debug("goal unreachable", slog.Int("expansions", res.Stats.Expansions))

		return res, nil
	}
	path, cost, err := Reconstruct(e.g, r.st.parent, source, goal)
	if err != nil {
		return nil, err
	}
	res.Reachable, res.Path, res.Cost = true, path, cost
	r.log.Debug("goal reached",
		slog.Int64("cost", cost),
		slog.Int("path_len", len(path)),
		slog.Int("expansions", res.Stats.Expansions))

	return res, nil
}

// runner encapsulates the mutable state of one run.
type runner struct {
	g     *core.Graph
	opts  Options
	ctx   context.Context
	pol   policy
	st    *runState
	goal  string
	log   *slog.Logger
	limit int
}

// newRunner seeds the frontier with source, whose heuristic h the caller
// has already resolved.
func (e *Engine) newRunner(o Options, strategy Strategy, pol policy, source, goal string, h int64) *runner {
	n := e.g.NodeCount()
	r := &runner{
		g:     e.g,
		opts:  o,
		ctx:   o.Ctx,
		pol:   pol,
		st:    newRunState(pol.newFrontier(n), n),
		goal:  goal,
		log:   o.Logger.With(slog.String("strategy", strategy.String())),
		limit: o.MaxExpansions,
	}
	pol.seed(r.st, source, h)

	return r
}

// loop pops until the goal is accepted, the frontier empties, or the run is
// aborted. It reports whether the goal was reached.
func (r *runner) loop() (bool, error) {
	for r.st.front.len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-r.ctx.Done():
			return false, r.ctx.Err()
		default:
		}

		e := r.st.front.pop()
		ns := r.st.node(e.id)
		if !r.pol.accept(r.st, e, ns) {
			r.st.stats.StaleDropped++
			continue
		}
		if r.limit > 0 && r.st.stats.Expansions >= r.limit {
			return false, fmt.Errorf("%w: %d", ErrExpansionLimit, r.limit)
		}
		if err := r.expand(e, ns); err != nil {
			return false, err
		}
		if e.id == r.goal {
			return true, nil
		}

		nbs, err := r.g.Neighbors(e.id)
		if err != nil {
			return false, fmt.Errorf("search: neighbors of %q: %w", e.id, err)
		}
		if err = r.pol.relax(r.st, e, nbs, r.g.Heuristic); err != nil {
			return false, fmt.Errorf("search: relax %q: %w", e.id, err)
		}
	}

	return false, nil
}

// expand records an accepted entry and runs the OnExpand hook.
func (r *runner) expand(e entry, ns *nodeState) error {
	r.st.stats.Expansions++
	if ns.closed {
		r.st.stats.Reopened++
	} else {
		r.st.expanded = append(r.st.expanded, e.id)
	}
	ns.closed, ns.closedCost = true, e.g

	r.log.Debug("expanding node",
		slog.String("node", e.id),
		slog.Int64("path_cost", e.g),
		slog.Int("frontier", r.st.front.len()))

	if err := r.opts.OnExpand(e.id, e.g); err != nil {
		return fmt.Errorf("search: OnExpand error at %q: %w", e.id, err)
	}

	return nil
}

// IsAbort reports whether err ended a run early (cancellation, deadline or
// expansion limit) as opposed to rejecting its input.
func IsAbort(err error) bool {
	return errors.Is(err, ErrExpansionLimit) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Package search provides tunable options, result types and error
// definitions for frontier-based path planning over a core.Graph.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownStrategy is returned for a Strategy value or name outside the four variants.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when a run accepts more nodes than WithMaxExpansions allows.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBrokenPath reports a predecessor chain that cannot be walked back over
	// real graph edges. It indicates an engine bug, never a user error.
	ErrBrokenPath = errors.New("search: broken path")

	// ErrCostOverflow is returned when the weights along the found path sum
	// past math.MaxInt64.
	ErrCostOverflow = errors.New("search: path cost overflows int64")
)

// Strategy selects the frontier policy and revisit rule of a run.
type Strategy int

const (
	// Breadth expands in FIFO order; nodes are marked visited when enqueued.
	Breadth Strategy = iota
	// Depth expands in LIFO order; visited nodes are skipped when popped.
	Depth
	// Greedy expands by heuristic alone; the first discovery of a node wins.
	Greedy
	// CostOptimal expands by path cost plus heuristic, reopening nodes on improvement.
	CostOptimal
)

var strategyNames = [...]string{
	Breadth:     "bfs",
	Depth:       "dfs",
	Greedy:      "greedy",
	CostOptimal: "astar",
}

// Strategies lists every variant in canonical order.
func Strategies() []Strategy {
	return []Strategy{Breadth, Depth, Greedy, CostOptimal}
}

// String returns the canonical short name ("bfs", "dfs", "greedy", "astar").
func (s Strategy) String() string {
	if s < Breadth || s > CostOptimal {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Valid reports whether s names one of the four variants.
func (s Strategy) Valid() bool {
	return s >= Breadth && s <= CostOptimal
}

// ParseStrategy maps a name or alias onto a Strategy. Matching is
// case-insensitive.
//
//	bfs | breadth             → Breadth
//	dfs | depth               → Depth
//	greedy | gbfs             → Greedy
//	astar | a* | cost-optimal → CostOptimal
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth":
		return Breadth, nil
	case "dfs", "depth":
		return Depth, nil
	case "greedy", "gbfs":
		return Greedy, nil
	case "astar", "a*", "cost-optimal":
		return CostOptimal, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText encodes the canonical name.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText accepts any name understood by ParseStrategy.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Stats counts frontier activity of a single run.
type Stats struct {
	// Expansions counts accepted pops, reopenings and the goal included.
	Expansions int `json:"expansions"`
	// Reopened counts re-expansions of closed nodes (CostOptimal only).
	Reopened int `json:"reopened"`
	// Pushed counts frontier insertions.
	Pushed int `json:"pushed"`
	// StaleDropped counts popped entries discarded without expansion.
	StaleDropped int `json:"stale_dropped"`
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int `json:"max_frontier"`
}

// Result is the outcome of one run. An unreachable goal is not an error:
// Reachable is false, Path is empty and Cost is 0.
type Result struct {
	Strategy  Strategy `json:"strategy"`
	Source    string   `json:"source"`
	Goal      string   `json:"goal"`
	Reachable bool     `json:"reachable"`
	Path      []string `json:"path"`
	Cost      int64    `json:"cost"`
	// Expanded lists each accepted node once, in order of first acceptance.
	// The goal, when reached, is the last element.
	Expanded []string `json:"expanded"`
	Stats    Stats    `json:"stats"`
}

// Observer receives the outcome of every run that passed option validation.
// res is nil when err is non-nil.
type Observer interface {
	ObserveRun(strategy Strategy, res *Result, err error, elapsed time.Duration)
}

// Option configures a run via functional arguments.
// If an Option is invalid (e.g. negative limit), it will be recorded
// internally and surfaced as ErrOptionViolation when the run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per loop iteration.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the run with ErrExpansionLimit once that
	// many pops have been accepted. 0 disables the limit.
	MaxExpansions int

	// OnExpand is called for every accepted pop with the node and its path
	// cost from source. A returned error aborts the run.
	OnExpand func(id string, pathCost int64) error

	// Logger receives a debug-level expansion trace.
	Logger *slog.Logger

	// Observer is notified once per run.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - no-op OnExpand
//   - a logger that discards everything
//   - no observer.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(string, int64) error { return nil },
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer:      nil,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of accepted pops.
//
//	n > 0: abort with ErrExpansionLimit past n
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run on every accepted pop; returning an
// error from it stops the search.
func WithOnExpand(fn func(id string, pathCost int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger routes the expansion trace to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers obs to be notified after each run.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

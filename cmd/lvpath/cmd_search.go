package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/search"
)

// limitFlags are shared by every command that runs the engine.
type limitFlags struct {
	maxExpansions int
	timeout       time.Duration
}

func (f *limitFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "abort after N expansions (0 = unlimited)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "abort the command after this long (0 = none)")
}

type searchFlags struct {
	limitFlags
	graph    string
	from     string
	to       string
	strategy string
	all      bool
	trace    bool
}

func newSearchCmd(a *app) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a path between two nodes of a graph file",
		Example: `  lvpath search --graph romania.yaml --from Arad --to Bucharest
  lvpath search --graph romania.yaml --from Arad --to Bucharest --all --trace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.applySearchFlags(cmd, &f.limitFlags)
			g, err := a.loadGraph(f.graph)
			if err != nil {
				return err
			}
			strategies := search.Strategies()
			if !f.all {
				s, err := a.strategy(cmd, f.strategy, a.cfg.Search.Strategy)
				if err != nil {
					return err
				}
				strategies = []search.Strategy{s}
			}

			return a.runSearches(cmd, g, strategies, f.from, f.to, f.trace)
		},
	}

	cmd.Flags().StringVarP(&f.graph, "graph", "g", "", "graph file (yaml or json)")
	cmd.Flags().StringVar(&f.from, "from", "", "source node")
	cmd.Flags().StringVar(&f.to, "to", "", "goal node")
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "bfs, dfs, greedy or astar (default from config)")
	cmd.Flags().BoolVar(&f.all, "all", false, "run every strategy")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "print the expansion order")
	f.register(cmd)
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	cmd.MarkFlagsMutuallyExclusive("strategy", "all")

	return cmd
}

type demoFlags struct {
	limitFlags
	from  string
	to    string
	trace bool
}

func newDemoCmd(a *app) *cobra.Command {
	f := &demoFlags{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every strategy on the built-in Romania road map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.applySearchFlags(cmd, &f.limitFlags)
			g, err := builder.RomaniaGraph()
			if err != nil {
				return err
			}

			return a.runSearches(cmd, g, search.Strategies(), f.from, f.to, f.trace)
		},
	}

	cmd.Flags().StringVar(&f.from, "from", "Arad", "source city")
	cmd.Flags().StringVar(&f.to, "to", builder.RomaniaGoal, "goal city (heuristics target "+builder.RomaniaGoal+")")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "print the expansion order")
	f.register(cmd)

	return cmd
}

// runSearches runs each strategy in turn on one engine and renders the
// results once all of them finished.
func (a *app) runSearches(cmd *cobra.Command, g *core.Graph, strategies []search.Strategy, from, to string, trace bool) error {
	ctx, cancel := a.runContext(cmd)
	defer cancel()

	e, err := search.NewEngine(g, a.searchOptions(ctx)...)
	if err != nil {
		return err
	}

	results := make([]*search.Result, 0, len(strategies))
	for _, s := range strategies {
		res, err := e.Run(s, from, to)
		if err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
		a.log.Info("search finished",
			slog.String("strategy", s.String()),
			slog.Bool("reachable", res.Reachable),
			slog.Int64("cost", res.Cost),
			slog.Int("expansions", res.Stats.Expansions))
		results = append(results, res)
	}

	return writeResults(cmd.OutOrStdout(), a.cfg.Output.Format, a.runID, results, trace)
}

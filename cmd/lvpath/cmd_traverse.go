package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/search"
)

type traverseFlags struct {
	limitFlags
	graph    string
	from     string
	strategy string
}

func newTraverseCmd(a *app) *cobra.Command {
	f := &traverseFlags{}
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Print the order in which a strategy visits every reachable node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.applySearchFlags(cmd, &f.limitFlags)
			g, err := a.loadGraph(f.graph)
			if err != nil {
				return err
			}
			s, err := a.strategy(cmd, f.strategy, search.Breadth.String())
			if err != nil {
				return err
			}

			ctx, cancel := a.runContext(cmd)
			defer cancel()
			e, err := search.NewEngine(g, a.searchOptions(ctx)...)
			if err != nil {
				return err
			}
			order, err := e.Traverse(s, f.from)
			if err != nil {
				return err
			}
			a.log.Info("traversal finished",
				slog.String("strategy", s.String()),
				slog.Int("visited", len(order)))

			return writeTraversal(cmd.OutOrStdout(), a.cfg.Output.Format, a.runID, traversal{
				Strategy: s,
				Source:   f.from,
				Order:    order,
			})
		},
	}

	cmd.Flags().StringVarP(&f.graph, "graph", "g", "", "graph file (yaml or json)")
	cmd.Flags().StringVar(&f.from, "from", "", "start node")
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "bfs, dfs, greedy or astar (default bfs)")
	f.register(cmd)
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

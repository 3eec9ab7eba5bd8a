package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/graphfile"
)

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in Romania road map as a graph file",
		Long: `Write the built-in Romania road map, with straight-line distances to
Bucharest as heuristics, as YAML. Use "--out -" for stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := builder.RomaniaGraph()
			if err != nil {
				return err
			}
			if out == "-" {
				return graphfile.Encode(cmd.OutOrStdout(), g)
			}
			if err = graphfile.Save(out, g); err != nil {
				return err
			}
			a.log.Info("graph exported",
				slog.String("path", out),
				slog.Int("nodes", g.NodeCount()),
				slog.Int("edges", g.EdgeCount()))

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", `destination file, "-" for stdout`)
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/graphfile"
	"github.com/katalvlaran/lvpath/internal/config"
	"github.com/katalvlaran/lvpath/internal/logger"
	"github.com/katalvlaran/lvpath/internal/metrics"
	"github.com/katalvlaran/lvpath/search"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// persistent flags
	configFile   string
	logLevel     string
	outputFormat string
	metricsOn    bool

	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
	rec    *metrics.Recorder
	runID  string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvpath",
		Short: "Plan paths over weighted graphs",
		Long: `lvpath runs breadth-first, depth-first, greedy best-first and A* search
over weighted graphs loaded from YAML or JSON files.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (yaml), overrides LVPATH_CONFIG")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVarP(&a.outputFormat, "output", "o", "", "output format: text, json")
	pf.BoolVar(&a.metricsOn, "metrics", false, "print Prometheus metrics to stderr when done")

	root.AddCommand(
		newSearchCmd(a),
		newTraverseCmd(a),
		newDemoCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger
// and metrics recorder.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.outputFormat
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled = a.metricsOn
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	var l *slog.Logger
	if cfg.Log.Output == "stderr" {
		l = logger.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	} else if l, a.closer, err = logger.New(cfg.Log); err != nil {
		return err
	}

	a.runID = uuid.NewString()
	a.log = logger.WithRunID(l, a.runID).With(slog.String("command", cmd.Name()))
	if cfg.Metrics.Enabled {
		a.rec = metrics.New(cfg.Metrics.Namespace)
	}

	a.log.Debug("configuration loaded",
		slog.String("strategy", cfg.Search.Strategy),
		slog.Int("max_expansions", cfg.Search.MaxExpansions),
		slog.Duration("timeout", cfg.Search.Timeout),
		slog.String("output", cfg.Output.Format))

	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.rec != nil {
		if err := a.rec.WriteText(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	if a.closer != nil {
		return a.closer.Close()
	}

	return nil
}

// runContext bounds a command by search.timeout when one is configured.
func (a *app) runContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Search.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Search.Timeout)
	}

	return context.WithCancel(ctx)
}

// searchOptions turns the effective configuration into engine options.
func (a *app) searchOptions(ctx context.Context) []search.Option {
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithLogger(a.log),
		search.WithMaxExpansions(a.cfg.Search.MaxExpansions),
	}
	if a.rec != nil {
		opts = append(opts, search.WithObserver(a.rec))
	}

	return opts
}

// strategy resolves the --strategy flag, falling back to fallback when the
// flag was not given.
func (a *app) strategy(cmd *cobra.Command, flag, fallback string) (search.Strategy, error) {
	name := fallback
	if cmd.Flags().Changed("strategy") {
		name = flag
	}
	s, err := search.ParseStrategy(name)
	if err != nil {
		return 0, fmt.Errorf("--strategy: %w", err)
	}

	return s, nil
}

// loadGraph reads a graph file and logs its shape.
func (a *app) loadGraph(path string) (*core.Graph, error) {
	g, err := graphfile.Load(path)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	a.log.Debug("graph loaded",
		slog.String("path", path),
		slog.Bool("directed", st.Directed),
		slog.Int("nodes", st.NodeCount),
		slog.Int("edges", st.EdgeCount),
		slog.Int("max_degree", st.MaxDegree),
		slog.Float64("heuristic_ratio", st.HeuristicRatio))

	return g, nil
}

// applySearchFlags lets per-command limits override the configuration.
func (a *app) applySearchFlags(cmd *cobra.Command, f *limitFlags) {
	if cmd.Flags().Changed("max-expansions") {
		a.cfg.Search.MaxExpansions = f.maxExpansions
	}
	if cmd.Flags().Changed("timeout") {
		a.cfg.Search.Timeout = f.timeout
	}
}

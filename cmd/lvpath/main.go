// Command lvpath plans paths over weighted graphs with breadth-first,
// depth-first, greedy best-first and A* search.
//
// Usage:
//
//	lvpath demo
//	lvpath search --graph map.yaml --from Arad --to Bucharest --strategy astar
//	lvpath search --graph map.yaml --from Arad --to Bucharest --all -o json
//	lvpath traverse --graph map.yaml --from Arad --strategy dfs
//	lvpath export --out romania.yaml
//
// Configuration is layered: built-in defaults, then a YAML file (--config,
// LVPATH_CONFIG or ./lvpath.yaml), then LVPATH_* environment variables, then
// command-line flags.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

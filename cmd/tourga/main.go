// Command tourga evolves a TSP tour with the genetic-algorithm engine and
// prints the best route found.
//
// Usage:
//
//	tourga [-config file.yaml] [-nodes 50] [-layout random|circles]
//	       [-generations 2000] [-strategy ox2opt|pmx] [-seed 42]
//	       [-json] [-log-level info]
//
// The config file is read over the CLI defaults: a budget of 2000
// generations and no pause between batches. Flags override the file. With
// -generations 0 the run continues until SIGINT or SIGTERM.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/tourga/runner"
	"github.com/katalvlaran/tourga/tsp"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "tourga:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tourga", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "YAML config file")
		nodes       = fs.Int("nodes", runner.DefaultNodes, "number of nodes")
		layout      = fs.String("layout", string(runner.LayoutRandom), "node layout: random|circles")
		generations = fs.Int("generations", 2000, "generation budget (0 = until interrupted)")
		strategy    = fs.String("strategy", runner.DefaultStrategyName, "operator set: ox2opt|pmx")
		seed        = fs.Int64("seed", 0, "RNG seed (0 = fixed default)")
		asJSON      = fs.Bool("json", false, "print the final snapshot as JSON")
		logLevel    = fs.String("log-level", "info", "log level: debug|info|warn|error")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("-log-level: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := runner.DefaultConfig()
	cfg.Generations = *generations
	cfg.Tick = 0
	if *configPath != "" {
		var err error
		if cfg, err = runner.LoadConfigFrom(*configPath, cfg); err != nil {
			return err
		}
	}
	// Explicit flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nodes":
			cfg.Nodes = *nodes
		case "layout":
			cfg.Layout = runner.Layout(*layout)
		case "generations":
			cfg.Generations = *generations
		case "strategy":
			cfg.Strategy = *strategy
		case "seed":
			cfg.Seed = *seed
		}
	})

	ctrl, err := runner.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return report(stdout, ctrl.Snapshot(), *asJSON)
}

func report(w io.Writer, snap runner.Snapshot, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(snap)
	}

	_, err := fmt.Fprintf(w,
		"run %s\nlayout %s, %d nodes, strategy %s, population %d\ngeneration %d, distance %.6f\ntour %s\n",
		snap.RunID, snap.Layout, len(snap.Points), snap.Strategy, snap.Population,
		snap.Generation, snap.Best.Distance, tsp.DebugString(snap.Best.Tour),
	)

	return err
}

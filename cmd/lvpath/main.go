// Command lvpath computes the shortest path between two vertices of a
// weighted digraph stored as a YAML adjacency matrix.
//
//	lvpath --graph=graph.yaml --source=A --target=C
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/internal/graphfile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) {
			// go-flags has already printed the message.
			if flagErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is the whole command: configuration, graph loading, computation and
// output. Unreachable targets are reported, not treated as failures.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	log := setupLoggers(cfg, stderr)
	defer dijkstra.DisableLog()

	g, err := graphfile.Load(cfg.Graph)
	if err != nil {
		return err
	}
	log.Debugf("Loaded %d-vertex graph from %s", g.Order(), cfg.Graph)

	src, err := g.Lookup(cfg.Source)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	dst, err := g.Lookup(cfg.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	opts := []dijkstra.Option{dijkstra.WithMaxDistance(cfg.MaxDistance)}
	if cfg.FullTree {
		opts = append(opts, dijkstra.WithFullTree())
	}
	if cfg.Strict {
		opts = append(opts, dijkstra.WithStrictMatrix())
	}

	solver, err := dijkstra.New(g.Weights, g.Order(), opts...)
	if err != nil {
		return err
	}

	cost, err := solver.ComputeShortestPath(src, dst)
	if err != nil {
		return err
	}
	log.Infof("Shortest path %s → %s costs %v", g.Label(src), g.Label(dst), cost)

	path, err := solver.GetPath(src, dst)
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		log.Warnf("No path from %s to %s", g.Label(src), g.Label(dst))
		path = nil

	case err != nil:
		return err
	}

	res, _ := solver.LastResult()
	renderResult(stdout, g, res, path, cfg.Order)

	return nil
}

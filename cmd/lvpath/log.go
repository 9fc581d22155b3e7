package main

import (
	"io"

	"github.com/btcsuite/btclog/v2"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// Subsystem is the logging code of the command itself.
const Subsystem = "LVPH"

// setupLoggers builds a console handler on w and hands the solver its
// sub-logger. It returns the command's own logger.
func setupLoggers(cfg *config, w io.Writer) btclog.Logger {
	var opts []btclog.HandlerOption
	if cfg.NoTimestamps {
		opts = append(opts, btclog.WithNoTimestamp())
	}
	root := btclog.NewSLogger(btclog.NewDefaultHandler(w, opts...))

	// validateConfig has already vetted the level string.
	level, _ := btclog.LevelFromString(cfg.DebugLevel)

	solverLog := root.SubSystem(dijkstra.Subsystem)
	solverLog.SetLevel(level)
	dijkstra.UseLogger(solverLog)

	mainLog := root.SubSystem(Subsystem)
	mainLog.SetLevel(level)

	return mainLog
}

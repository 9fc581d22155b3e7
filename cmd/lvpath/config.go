package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/btcsuite/btclog/v2"
	"github.com/jessevdk/go-flags"
)

const (
	defaultDebugLevel = "info"

	orderTargetFirst = "target-first"
	orderSourceFirst = "source-first"
)

var (
	errMissingGraph  = errors.New("a graph file must be given with --graph")
	errMissingVertex = errors.New("both --source and --target must be given")
)

// config defines the configuration options for lvpath.
//
// See loadConfig for further details regarding the configuration loading and
// parsing process.
type config struct {
	ConfigFile string `long:"configfile" description:"Path to an INI configuration file; command line flags take precedence"`

	Graph  string `short:"g" long:"graph" description:"YAML file holding the vertex labels and the weight matrix"`
	Source string `short:"s" long:"source" description:"Source vertex, by label or by index"`
	Target string `short:"t" long:"target" description:"Target vertex, by label or by index"`

	FullTree    bool    `long:"fulltree" description:"Finalize every reachable vertex instead of stopping at the target"`
	MaxDistance float64 `long:"maxdistance" description:"Treat vertices farther than this distance as unreachable"`
	Strict      bool    `long:"strict" description:"Reject weight matrices that are not square or contain NaN"`
	Order       string  `long:"order" description:"Order in which the path is printed" choice:"target-first" choice:"source-first"`

	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical, off"`
	NoTimestamps bool   `long:"notimestamps" description:"Omit timestamps from log lines"`
}

// defaultConfig returns a config with every option at its default value.
func defaultConfig() config {
	return config{
		MaxDistance: math.Inf(1),
		Order:       orderTargetFirst,
		DebugLevel:  defaultDebugLevel,
	}
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func loadConfig(args []string) (*config, error) {
	// Pre-parse the command line options to pick up an alternative config
	// file.
	preCfg := defaultConfig()
	if _, err := flags.NewParser(&preCfg, flags.Default).ParseArgs(args); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	parser := flags.NewParser(&cfg, flags.Default)
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w",
				preCfg.ConfigFile, err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateConfig checks the options that go-flags cannot check on its own.
func validateConfig(cfg *config) error {
	if cfg.Graph == "" {
		return errMissingGraph
	}
	if cfg.Source == "" || cfg.Target == "" {
		return errMissingVertex
	}
	if cfg.MaxDistance < 0 || math.IsNaN(cfg.MaxDistance) {
		return fmt.Errorf("invalid --maxdistance %v: must be non-negative",
			cfg.MaxDistance)
	}
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		return fmt.Errorf("invalid --debuglevel %q", cfg.DebugLevel)
	}

	return nil
}

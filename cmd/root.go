package cmd

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orome/automata-go/automata"
)

var (
	// CLI flags for the automaton configuration
	ruleFlag   string  // Rule identifier: decimal numeral or symbolic name
	base       int     // Number of cell states
	width      int     // Neighborhood width (cells consulted per lookup)
	cells      int     // Lattice length
	steps      int     // Generations to produce
	boundary   string  // Boundary mode (periodic, zero, one, fixed:<digit>, reflect)
	pattern    string  // Initial conditions as a string of alphabet digits
	seedPolicy string  // Seeding policy (pattern, zero, center, random, random-density)
	seed       int64   // Seed for random lattice seeding
	density    float64 // Activation probability for random-density seeding
	workers    int     // Intra-generation worker goroutines
	keepLast   int     // History retention; 0 keeps every generation
	logLevel   string  // Log verbosity level

	// CLI flags for the display window over the produced history
	startStep  int    // First generation of the displayed window
	countSteps int    // Generations in the displayed window; 0 means to the end
	glyphs     string // Per-state display characters for text output
	showStats  bool   // Print run metrics after the output

	// CLI flags for presets
	preset      string // Named scenario to run instead of flag configuration
	presetsFile string // Path to the scenarios YAML file
)

// envDefaults are environment overrides applied to flag defaults before
// parsing, so flags still win when given explicitly.
type envDefaults struct {
	Log         string `env:"AUTOMATA_LOG" envDefault:"error"`
	Workers     int    `env:"AUTOMATA_WORKERS" envDefault:"1"`
	PresetsFile string `env:"AUTOMATA_PRESETS_FILE" envDefault:"examples/scenarios.yaml"`
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Simulate and display one-dimensional cellular automata",
}

// setupLogging applies the --log flag before a command runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildConfig resolves the preset or the automaton flags into a run
// configuration. A named preset replaces the flag configuration entirely.
func buildConfig() (automata.Config, error) {
	if preset != "" {
		file, err := automata.LoadScenarios(presetsFile)
		if err != nil {
			return automata.Config{}, err
		}
		if err := file.Validate(); err != nil {
			return automata.Config{}, err
		}
		scenario, ok := file.Find(preset)
		if !ok {
			return automata.Config{}, fmt.Errorf("no scenario named %q in %s", preset, presetsFile)
		}
		return scenario.Config()
	}

	id, err := automata.ParseIdentifier(ruleFlag)
	if err != nil {
		return automata.Config{}, err
	}
	bound, err := automata.ParseBoundary(boundary)
	if err != nil {
		return automata.Config{}, err
	}
	seeding, err := automata.ParseSeedPolicy(seedPolicy, pattern, seed, density)
	if err != nil {
		return automata.Config{}, err
	}
	return automata.Config{
		Rule:        id,
		Base:        base,
		Width:       width,
		Cells:       cells,
		Generations: steps,
		Boundary:    bound,
		Seeding:     seeding,
		Workers:     workers,
		KeepLast:    keepLast,
	}, nil
}

// evolve builds an evolver from the resolved configuration and runs it to
// completion, exiting on any configuration or step error.
func evolve() *automata.Evolver {
	cfg, err := buildConfig()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	ev, err := automata.NewEvolver(cfg)
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logrus.Infof("Evolving rule %s over %d cells for %d generations (%s boundary)",
		ev.Rule().Identifier(), cfg.Cells, cfg.Generations, cfg.Boundary)
	if err := ev.Run(); err != nil {
		logrus.Fatalf("Run failed: %v", err)
	}
	return ev
}

// windowSpec resolves --start/--count against the produced history.
// A nil result means the whole retained history.
func windowSpec(h *automata.History) *automata.SliceSpec {
	if startStep == 0 && countSteps == 0 {
		return nil
	}
	count := countSteps
	if count == 0 {
		count = h.Len() - startStep
	}
	return &automata.SliceSpec{Start: startStep, Steps: count}
}

// seedDescription names the initial conditions for default output filenames.
func seedDescription() string {
	if preset != "" {
		return preset
	}
	if seedPolicy == "" || seedPolicy == "pattern" {
		if pattern == "" {
			return "1"
		}
		return pattern
	}
	return seedPolicy
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		logrus.Fatalf("Invalid environment configuration: %v", err)
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&ruleFlag, "rule", "r", "30", "Rule identifier: decimal numeral or name (sierpinski, chaos, traffic, turing)")
	pf.IntVar(&base, "base", 2, "Number of cell states (2-36)")
	pf.IntVar(&width, "width", 3, "Neighborhood width (positive odd integer)")
	pf.IntVar(&cells, "cells", 101, "Lattice length")
	pf.IntVarP(&steps, "steps", "s", 50, "Number of generations to produce")
	pf.StringVarP(&boundary, "boundary", "c", "zero", "Boundary mode (periodic, zero, one, fixed:<digit>, reflect)")
	pf.StringVarP(&pattern, "pattern", "i", "1", "Initial conditions as a string of alphabet digits, centered")
	pf.StringVar(&seedPolicy, "seed-policy", "", "Seeding policy (pattern, zero, center, random, random-density)")
	pf.Int64Var(&seed, "seed", 42, "Seed for random lattice seeding")
	pf.Float64Var(&density, "density", 0.5, "Activation probability for random-density seeding")
	pf.IntVar(&workers, "workers", defaults.Workers, "Worker goroutines per generation")
	pf.IntVar(&keepLast, "keep-last", 0, "Retain only the last K generations (0 keeps all)")
	pf.StringVar(&logLevel, "log", defaults.Log, "Log level (trace, debug, info, warn, error, fatal, panic)")

	pf.IntVar(&startStep, "start", 0, "First generation of the displayed window")
	pf.IntVar(&countSteps, "count", 0, "Generations in the displayed window (0 = to the end)")
	pf.StringVar(&glyphs, "glyphs", "", "Per-state display characters for text output (e.g. \" #\")")
	pf.BoolVar(&showStats, "stats", false, "Print run metrics after the output")

	pf.StringVar(&preset, "preset", "", "Run a named scenario from the presets file instead of flags")
	pf.StringVar(&presetsFile, "presets-file", defaults.PresetsFile, "Path to the scenarios YAML file")
}

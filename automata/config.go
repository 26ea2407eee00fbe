package automata

import (
	"fmt"
	"math/big"
)

// Config is the complete, explicit configuration of one run. There is no
// process-wide simulation state: every evolver gets its own Config, scoped
// to that run.
type Config struct {
	Rule        *big.Int   // rule identifier, decoded per the canonical digit order
	Base        int        // number of cell states, in [2, 36]
	Width       int        // neighborhood width, positive odd
	Cells       int        // lattice length
	Generations int        // generations Run produces beyond the initial one
	Boundary    Boundary   // edge resolution, fixed for the run
	Seeding     SeedPolicy // initial lattice population
	Workers     int        // intra-generation parallelism; <= 1 is serial
	KeepLast    int        // history retention; <= 0 keeps every generation
}

// DefaultConfig mirrors the conventional elementary-automaton run: binary
// states, radius-1 neighborhood, a single active center cell on a 101-cell
// lattice with a zero boundary, 50 generations.
func DefaultConfig() Config {
	return Config{
		Rule:        big.NewInt(30),
		Base:        2,
		Width:       3,
		Cells:       101,
		Generations: 50,
		Boundary:    FixedBoundary(0),
		Seeding:     SeedPolicy{Kind: SeedPattern, Pattern: "1"},
		Workers:     1,
	}
}

// Validate checks the configuration eagerly, before any generation is
// computed. It reports the first inconsistency found.
func (c Config) Validate() error {
	if c.Rule == nil {
		return &ConfigError{Field: "rule", Reason: "identifier is nil"}
	}
	if c.Base < MinBase || c.Base > MaxBase {
		return &ConfigError{Field: "base", Reason: fmt.Sprintf("must be in [%d, %d], got %d", MinBase, MaxBase, c.Base)}
	}
	if c.Width < 1 || c.Width%2 == 0 {
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("must be a positive odd integer, got %d", c.Width)}
	}
	if _, ok := tableSize(c.Base, c.Width); !ok {
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("lookup table for base %d width %d exceeds %d entries", c.Base, c.Width, maxTableSize)}
	}
	if c.Cells < 1 {
		return &ConfigError{Field: "cells", Reason: fmt.Sprintf("lattice length must be at least 1, got %d", c.Cells)}
	}
	if c.Generations < 0 {
		return &ConfigError{Field: "steps", Reason: fmt.Sprintf("generation count must be non-negative, got %d", c.Generations)}
	}
	if err := c.Boundary.validate(c.Base); err != nil {
		return err
	}
	return nil
}

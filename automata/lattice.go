package automata

import (
	"fmt"
	"strings"
)

// SeedKind selects how the initial lattice is populated.
type SeedKind int

const (
	// SeedAllZero starts every cell at state 0.
	SeedAllZero SeedKind = iota
	// SeedSingleActiveCenter starts one state-1 cell at length/2, all else
	// zero — the canonical Wolfram starting condition.
	SeedSingleActiveCenter
	// SeedRandom draws every cell from the configured distribution,
	// reproducibly from the configured seed.
	SeedRandom
	// SeedPattern centers a string of alphabet digits on the lattice.
	SeedPattern
)

// Distribution selects how SeedRandom draws cell states.
type Distribution int

const (
	// Uniform draws each cell uniformly over [0, base).
	Uniform Distribution = iota
	// Density makes each cell active with probability Density, with the
	// active state drawn uniformly over [1, base).
	Density
)

// SeedPolicy is the closed seeding variant: a kind plus the parameters the
// kind consumes. Unused fields are ignored.
type SeedPolicy struct {
	Kind         SeedKind
	Seed         int64        // SeedRandom: master seed for reproducibility
	Distribution Distribution // SeedRandom: how cells are drawn
	Density      float64      // SeedRandom with Density: activation probability
	Pattern      string       // SeedPattern: alphabet digits to center
}

// Lattice is one generation: an ordered, fixed-length sequence of cell
// states. A lattice is never mutated once built; the evolver always
// materializes the next generation as a fresh instance, so retained history
// snapshots have no aliasing hazards.
type Lattice struct {
	cells []CellState
	base  int
}

// Seed builds the initial lattice of the given length and base according to
// the seeding policy. Configuration problems (bad length, bad base, a
// pattern that overflows the lattice or uses symbols outside the base's
// alphabet, a density outside [0, 1]) fail eagerly with a ConfigError.
func Seed(length, base int, policy SeedPolicy) (*Lattice, error) {
	if length < 1 {
		return nil, &ConfigError{Field: "cells", Reason: fmt.Sprintf("lattice length must be at least 1, got %d", length)}
	}
	if base < MinBase || base > MaxBase {
		return nil, &ConfigError{Field: "base", Reason: fmt.Sprintf("must be in [%d, %d], got %d", MinBase, MaxBase, base)}
	}

	cells := make([]CellState, length)
	switch policy.Kind {
	case SeedAllZero:
		// zero value already

	case SeedSingleActiveCenter:
		cells[length/2] = 1

	case SeedRandom:
		rng := NewPartitionedRNG(NewSimulationKey(policy.Seed)).ForSubsystem(SubsystemSeeding)
		switch policy.Distribution {
		case Uniform:
			for i := range cells {
				cells[i] = CellState(rng.Intn(base))
			}
		case Density:
			if policy.Density < 0 || policy.Density > 1 {
				return nil, &ConfigError{Field: "density", Reason: fmt.Sprintf("must be in [0, 1], got %g", policy.Density)}
			}
			for i := range cells {
				if rng.Float64() < policy.Density {
					cells[i] = CellState(1 + rng.Intn(base-1))
				}
			}
		default:
			return nil, &ConfigError{Field: "distribution", Reason: fmt.Sprintf("unknown distribution %d", policy.Distribution)}
		}

	case SeedPattern:
		pattern := policy.Pattern
		if pattern == "" {
			return nil, &ConfigError{Field: "pattern", Reason: "empty pattern"}
		}
		// Even-length patterns are left-padded with one zero so the pattern
		// centers on a definite cell.
		if len(pattern)%2 == 0 {
			pattern = string(Alphabet[0]) + pattern
		}
		start := length/2 - len(pattern)/2
		if start < 0 || start+len(pattern) > length {
			return nil, &ConfigError{Field: "pattern", Reason: fmt.Sprintf("pattern of length %d overflows a %d-cell lattice when centered", len(pattern), length)}
		}
		for i := 0; i < len(pattern); i++ {
			s, err := stateOf(pattern[i], base)
			if err != nil {
				return nil, err
			}
			cells[start+i] = s
		}

	default:
		return nil, &ConfigError{Field: "seeding", Reason: fmt.Sprintf("unknown seed kind %d", policy.Kind)}
	}

	return &Lattice{cells: cells, base: base}, nil
}

// newLattice wraps a cell buffer the caller will not reuse.
func newLattice(cells []CellState, base int) *Lattice {
	return &Lattice{cells: cells, base: base}
}

// Len returns the number of cells.
func (l *Lattice) Len() int { return len(l.cells) }

// Base returns the number of states cells may take.
func (l *Lattice) Base() int { return l.base }

// Get returns the state at pos, failing with a BoundsError outside
// [0, Len()).
func (l *Lattice) Get(pos int) (CellState, error) {
	if pos < 0 || pos >= len(l.cells) {
		return 0, &BoundsError{Kind: "lattice", Index: pos, Limit: len(l.cells)}
	}
	return l.cells[pos], nil
}

// States returns a copy of the cell states.
func (l *Lattice) States() []CellState {
	out := make([]CellState, len(l.cells))
	copy(out, l.cells)
	return out
}

// Counts tallies cells per state, indexed by state value.
func (l *Lattice) Counts() []int {
	counts := make([]int, l.base)
	for _, c := range l.cells {
		counts[c]++
	}
	return counts
}

// String renders the lattice as alphabet digits, one per cell.
func (l *Lattice) String() string {
	var b strings.Builder
	b.Grow(len(l.cells))
	for _, c := range l.cells {
		b.WriteByte(digitOf(c))
	}
	return b.String()
}

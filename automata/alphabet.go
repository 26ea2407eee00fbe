package automata

import "fmt"

// CellState is the state of a single cell, a value in [0, base).
type CellState uint8

// Alphabet maps cell states to display digits for bases up to 36.
// State s is written as Alphabet[s], so base-2 lattices read as 0s and 1s
// and higher bases continue through A..Z.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	// MinBase is the smallest supported number of cell states.
	MinBase = 2
	// MaxBase is the largest supported number of cell states,
	// bounded by the digit alphabet.
	MaxBase = len(Alphabet)
)

// digitOf returns the alphabet digit for a cell state.
// The caller guarantees s < MaxBase.
func digitOf(s CellState) byte {
	return Alphabet[s]
}

// stateOf converts an alphabet digit to a cell state, failing when the
// symbol does not name a state of the given base.
func stateOf(digit byte, base int) (CellState, error) {
	for i := 0; i < base; i++ {
		if Alphabet[i] == digit {
			return CellState(i), nil
		}
	}
	return 0, &ConfigError{Field: "pattern", Reason: fmt.Sprintf("invalid symbol %q for base %d", digit, base)}
}

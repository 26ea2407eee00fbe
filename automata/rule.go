package automata

import (
	"fmt"
	"math/big"
	"strings"
)

// namedRules maps symbolic rule names accepted by ParseIdentifier to
// Wolfram codes (base 2, width 3).
var namedRules = map[string]int64{
	"sierpinski": 90,
	"chaos":      30,
	"traffic":    184,
	"turing":     110,
}

// Rule is an immutable decoded update rule: a total lookup table from every
// ordered width-long neighbor tuple to the next state of the center cell.
//
// The canonical digit order, which defines a rule number's external identity:
// a neighborhood tuple is read as a base-`base` numeral with the leftmost
// neighbor most significant; the tuple's numeric value v selects digit v of
// the identifier written in base `base`, where digit 0 is the least
// significant. For base 2, width 3 this is exactly the Wolfram numbering
// (rule 30's table reads 00011110 over the configurations 111 down to 000).
type Rule struct {
	identifier *big.Int
	base       int
	width      int
	table      []CellState
}

// NewRule decodes a rule identifier into a Rule for the given base (number of
// cell states) and neighborhood width. It fails with a ConfigError when base
// or width is out of range and with a RuleError when the identifier is
// negative or at least base^(base^width).
func NewRule(identifier *big.Int, base, width int) (*Rule, error) {
	if base < MinBase || base > MaxBase {
		return nil, &ConfigError{Field: "base", Reason: fmt.Sprintf("must be in [%d, %d], got %d", MinBase, MaxBase, base)}
	}
	if width < 1 || width%2 == 0 {
		return nil, &ConfigError{Field: "width", Reason: fmt.Sprintf("must be a positive odd integer, got %d", width)}
	}
	if identifier == nil {
		return nil, &ConfigError{Field: "rule", Reason: "identifier is nil"}
	}
	patterns, ok := tableSize(base, width)
	if !ok {
		return nil, &ConfigError{Field: "width", Reason: fmt.Sprintf("lookup table for base %d width %d exceeds %d entries", base, width, maxTableSize)}
	}
	max := MaxIdentifier(base, width)
	if identifier.Sign() < 0 || identifier.Cmp(max) > 0 {
		return nil, &RuleError{Identifier: new(big.Int).Set(identifier), Base: base, Width: width}
	}

	table := make([]CellState, patterns)
	bigBase := big.NewInt(int64(base))
	digit := new(big.Int)
	rest := new(big.Int).Set(identifier)
	for v := 0; v < patterns; v++ {
		rest.QuoRem(rest, bigBase, digit)
		table[v] = CellState(digit.Int64())
	}

	return &Rule{
		identifier: new(big.Int).Set(identifier),
		base:       base,
		width:      width,
		table:      table,
	}, nil
}

// ParseIdentifier converts a decimal numeral or a recognized symbolic rule
// name into a rule identifier.
func ParseIdentifier(s string) (*big.Int, error) {
	if code, ok := namedRules[strings.ToLower(s)]; ok {
		return big.NewInt(code), nil
	}
	id, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &RuleError{Name: s}
	}
	return id, nil
}

// Apply looks up the next state of the center cell for the given neighbor
// tuple. The lookup is total; the only failure is a tuple whose length
// disagrees with the rule's width, which is a configuration error.
func (r *Rule) Apply(neigh []CellState) (CellState, error) {
	if len(neigh) != r.width {
		return 0, &ConfigError{Field: "neighborhood", Reason: fmt.Sprintf("tuple length %d does not match rule width %d", len(neigh), r.width)}
	}
	v := 0
	for _, s := range neigh {
		v = v*r.base + int(s)
	}
	return r.table[v], nil
}

// Identifier returns a copy of the rule's numeric identifier.
func (r *Rule) Identifier() *big.Int { return new(big.Int).Set(r.identifier) }

// Base returns the number of cell states.
func (r *Rule) Base() int { return r.base }

// Width returns the neighborhood width.
func (r *Rule) Width() int { return r.width }

// Outputs returns a copy of the lookup table indexed by the numeric value of
// the neighbor tuple, for display surfaces.
func (r *Rule) Outputs() []CellState {
	out := make([]CellState, len(r.table))
	copy(out, r.table)
	return out
}

// Encoding renders the lookup table as the identifier's base-`base` digits,
// most significant first: the outputs for configurations enumerated from
// highest numeric value down to lowest. Rule 30 in base 2 reads "00011110".
func (r *Rule) Encoding() string {
	var b strings.Builder
	for v := len(r.table) - 1; v >= 0; v-- {
		b.WriteByte(digitOf(r.table[v]))
	}
	return b.String()
}

// MaxIdentifier returns base^(base^width) - 1, the largest valid rule
// identifier for the given base and width. The bound overflows uint64
// already at base 4, width 3, hence big.Int. Returns nil when the lookup
// table for base and width exceeds maxTableSize.
func MaxIdentifier(base, width int) *big.Int {
	patterns, ok := tableSize(base, width)
	if !ok {
		return nil
	}
	max := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(patterns)), nil)
	return max.Sub(max, big.NewInt(1))
}

// maxTableSize bounds base^width so a rule's lookup table is always
// allocable as one slice.
const maxTableSize = 1 << 26

// tableSize returns base^width, the number of distinct neighbor tuples.
// ok is false when the count exceeds maxTableSize.
func tableSize(base, width int) (n int, ok bool) {
	n = 1
	for i := 0; i < width; i++ {
		if n > maxTableSize/base {
			return 0, false
		}
		n *= base
	}
	return n, true
}

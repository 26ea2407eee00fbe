package automata

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === Decoding Tests ===

func TestNewRule_IdentifierBounds(t *testing.T) {
	tests := []struct {
		name       string
		identifier int64
		base       int
		width      int
		wantErr    bool
	}{
		{"rule 0 valid", 0, 2, 3, false},
		{"rule 255 valid", 255, 2, 3, false},
		{"rule 256 out of range", 256, 2, 3, true},
		{"rule 512 out of range", 512, 2, 3, true},
		{"negative rule", -1, 2, 3, true},
		{"negative rule base 3", -1, 3, 3, true},
		{"width 1 rule 3 valid", 3, 2, 1, false},
		{"width 1 rule 4 out of range", 4, 2, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRule(big.NewInt(tt.identifier), tt.base, tt.width)
			if tt.wantErr {
				var ruleErr *RuleError
				if !errors.As(err, &ruleErr) {
					t.Errorf("NewRule(%d, %d, %d) error = %v, want RuleError", tt.identifier, tt.base, tt.width, err)
				}
			} else if err != nil {
				t.Errorf("NewRule(%d, %d, %d) unexpected error: %v", tt.identifier, tt.base, tt.width, err)
			}
		})
	}
}

func TestNewRule_ExclusiveUpperBound(t *testing.T) {
	// The bound is base^(base^width): 4 for base 2 width 1, 256 for width 3.
	for _, width := range []int{1, 3} {
		max := MaxIdentifier(2, width)
		if _, err := NewRule(max, 2, width); err != nil {
			t.Errorf("width %d: identifier %v should be valid: %v", width, max, err)
		}
		over := new(big.Int).Add(max, big.NewInt(1))
		var ruleErr *RuleError
		if _, err := NewRule(over, 2, width); !errors.As(err, &ruleErr) {
			t.Errorf("width %d: identifier %v should be rejected, got %v", width, over, err)
		}
	}
}

func TestNewRule_ConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		base  int
		width int
	}{
		{"base 1 too small", 1, 3},
		{"base 37 too large", 37, 3},
		{"width 0", 2, 0},
		{"width even", 2, 2},
		{"width negative", 2, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRule(big.NewInt(0), tt.base, tt.width)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("NewRule(0, %d, %d) error = %v, want ConfigError", tt.base, tt.width, err)
			}
		})
	}
}

func TestNewRule_WidthTableLimit(t *testing.T) {
	// base 2 width 63 would need a 2^63-entry lookup table. The combination
	// must fail eagerly as a ConfigError, never reach allocation.
	for _, id := range []int64{0, 1} {
		_, err := NewRule(big.NewInt(id), 2, 63)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr, "NewRule(%d, 2, 63)", id)
		assert.Equal(t, "width", cfgErr.Field)
	}

	cfg := DefaultConfig()
	cfg.Width = 63
	var cfgErr *ConfigError
	require.ErrorAs(t, cfg.Validate(), &cfgErr)
	assert.Equal(t, "width", cfgErr.Field)

	assert.Nil(t, MaxIdentifier(2, 63))
}

// TestRule_CanonicalDigitOrder locks the rule's external identity: rule 30
// in base 2 reads 00011110 over the configurations 111 down to 000.
func TestRule_CanonicalDigitOrder(t *testing.T) {
	rule, err := NewRule(big.NewInt(30), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "00011110", rule.Encoding())

	// Digit v of the identifier is the output for the tuple of value v.
	outputs := rule.Outputs()
	for v := 0; v < 8; v++ {
		want := CellState((30 >> v) & 1)
		assert.Equal(t, want, outputs[v], "output for tuple value %d", v)
	}
}

func TestRule_ApplyTotality(t *testing.T) {
	// Every possible neighbor tuple maps to exactly one output, for several
	// rules across bases.
	cases := []struct {
		identifier int64
		base       int
		width      int
	}{
		{30, 2, 3},
		{90, 2, 3},
		{0, 2, 3},
		{255, 2, 3},
		{7625597484986, 3, 3},
	}
	for _, c := range cases {
		rule, err := NewRule(big.NewInt(c.identifier), c.base, c.width)
		if err != nil {
			t.Fatalf("NewRule(%d, %d, %d): %v", c.identifier, c.base, c.width, err)
		}
		tuples, ok := tableSize(c.base, c.width)
		if !ok {
			t.Fatalf("tableSize(%d, %d) over limit", c.base, c.width)
		}
		for v := 0; v < tuples; v++ {
			neigh := make([]CellState, c.width)
			rest := v
			for i := c.width - 1; i >= 0; i-- {
				neigh[i] = CellState(rest % c.base)
				rest /= c.base
			}
			out, err := rule.Apply(neigh)
			if err != nil {
				t.Fatalf("Apply(%v): %v", neigh, err)
			}
			if int(out) >= c.base {
				t.Fatalf("Apply(%v) = %d, not a state of base %d", neigh, out, c.base)
			}
		}
	}
}

func TestRule_DecodeDeterminism(t *testing.T) {
	// Re-decoding the same identifier yields an identical lookup table.
	a, err := NewRule(big.NewInt(110), 2, 3)
	require.NoError(t, err)
	b, err := NewRule(big.NewInt(110), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, a.Outputs(), b.Outputs())
	assert.Equal(t, a.Encoding(), b.Encoding())
}

func TestRule_ApplyWidthMismatch(t *testing.T) {
	rule, err := NewRule(big.NewInt(30), 2, 3)
	require.NoError(t, err)

	_, err = rule.Apply([]CellState{1, 0})
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

// === Identifier Parsing Tests ===

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"30", 30, false},
		{"0", 0, false},
		{"-1", -1, false}, // parses; NewRule rejects it
		{"sierpinski", 90, false},
		{"chaos", 30, false},
		{"traffic", 184, false},
		{"turing", 110, false},
		{"Sierpinski", 90, false},
		{"nonsense", 0, true},
		{"", 0, true},
		{"12abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, err := ParseIdentifier(tt.in)
			if tt.wantErr {
				var ruleErr *RuleError
				if !errors.As(err, &ruleErr) {
					t.Errorf("ParseIdentifier(%q) = %v, %v, want RuleError", tt.in, id, err)
				} else if ruleErr.Name != tt.in {
					t.Errorf("ParseIdentifier(%q) RuleError.Name = %q", tt.in, ruleErr.Name)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIdentifier(%q): %v", tt.in, err)
			}
			if id.Int64() != tt.want {
				t.Errorf("ParseIdentifier(%q) = %v, want %d", tt.in, id, tt.want)
			}
		})
	}
}

func TestMaxIdentifier_OverflowsUint64(t *testing.T) {
	// base 4, width 3 gives 4^64 - 1, which no fixed-width integer holds.
	max := MaxIdentifier(4, 3)
	assert.False(t, max.IsUint64(), "expected 4^64-1 to exceed uint64")

	rule, err := NewRule(max, 4, 3)
	require.NoError(t, err)
	assert.Len(t, rule.Outputs(), 64)
	for _, out := range rule.Outputs() {
		assert.Equal(t, CellState(3), out, "every digit of the max identifier is base-1")
	}
}

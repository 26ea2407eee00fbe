package automata

import (
	"fmt"
	"math/big"
)

// RuleError reports a rule identifier outside [0, base^(base^width)) or a
// symbolic rule name with no known code.
type RuleError struct {
	Identifier *big.Int
	Base       int
	Width      int
	Name       string // unrecognized symbolic name; empty for numeric range errors
}

func (e *RuleError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid rule %q, not a decimal numeral or a known rule name", e.Name)
	}
	return fmt.Sprintf("invalid rule number %v, must be between 0 and %v for base %d width %d",
		e.Identifier, MaxIdentifier(e.Base, e.Width), e.Base, e.Width)
}

// ConfigError reports an inconsistent base/width/boundary/seeding combination,
// detected eagerly at construction.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// BoundsError reports an out-of-range lattice or history access.
type BoundsError struct {
	Kind  string // "lattice" or "history"
	Index int
	Limit int // exclusive upper bound of valid indexes
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Kind, e.Index, e.Limit)
}

// StepError wraps a failure raised while computing one generation. The
// generation that failed is never appended to history.
type StepError struct {
	Generation int
	Err        error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step to generation %d failed: %v", e.Generation, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

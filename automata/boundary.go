package automata

import (
	"fmt"
	"strings"
)

// BoundaryKind selects how out-of-range neighbor indexes are resolved.
type BoundaryKind int

const (
	// Periodic wraps indexes modulo the lattice length.
	Periodic BoundaryKind = iota
	// Fixed substitutes a constant fill state for out-of-range neighbors.
	Fixed
	// Reflective mirrors indexes back into range at the lattice edges.
	Reflective
)

// Boundary is the closed boundary-mode variant: a kind plus the fill state
// used when the kind is Fixed. It is resolved once at construction and never
// re-dispatched per cell.
type Boundary struct {
	Kind BoundaryKind
	Fill CellState
}

// PeriodicBoundary returns the wrap-around boundary mode.
func PeriodicBoundary() Boundary { return Boundary{Kind: Periodic} }

// FixedBoundary returns a boundary mode that resolves out-of-range neighbors
// to the given constant state.
func FixedBoundary(fill CellState) Boundary { return Boundary{Kind: Fixed, Fill: fill} }

// ReflectiveBoundary returns the mirror-at-edges boundary mode.
func ReflectiveBoundary() Boundary { return Boundary{Kind: Reflective} }

// ParseBoundary converts a boundary-mode name into a Boundary. Recognized
// forms: "periodic", "zero" (fixed 0), "one" (fixed 1), "fixed:<digit>"
// with an alphabet digit naming the fill state, and "reflect".
func ParseBoundary(s string) (Boundary, error) {
	switch {
	case s == "periodic":
		return PeriodicBoundary(), nil
	case s == "zero":
		return FixedBoundary(0), nil
	case s == "one":
		return FixedBoundary(1), nil
	case s == "reflect":
		return ReflectiveBoundary(), nil
	case strings.HasPrefix(s, "fixed:"):
		digit := strings.TrimPrefix(s, "fixed:")
		if len(digit) != 1 {
			return Boundary{}, &ConfigError{Field: "boundary", Reason: fmt.Sprintf("fill %q must be a single alphabet digit", digit)}
		}
		fill, err := stateOf(digit[0], MaxBase)
		if err != nil {
			return Boundary{}, &ConfigError{Field: "boundary", Reason: fmt.Sprintf("fill %q is not an alphabet digit", digit)}
		}
		return FixedBoundary(fill), nil
	default:
		return Boundary{}, &ConfigError{Field: "boundary", Reason: fmt.Sprintf("unknown mode %q, must be one of periodic, zero, one, fixed:<digit>, reflect", s)}
	}
}

// String renders the boundary mode in the form ParseBoundary accepts.
func (b Boundary) String() string {
	switch b.Kind {
	case Periodic:
		return "periodic"
	case Reflective:
		return "reflect"
	default:
		switch b.Fill {
		case 0:
			return "zero"
		case 1:
			return "one"
		default:
			return "fixed:" + string(digitOf(b.Fill))
		}
	}
}

// validate checks the boundary against the configured base.
func (b Boundary) validate(base int) error {
	if b.Kind == Fixed && int(b.Fill) >= base {
		return &ConfigError{Field: "boundary", Reason: fmt.Sprintf("fill state %d is not a state of base %d", b.Fill, base)}
	}
	return nil
}

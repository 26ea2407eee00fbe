package automata

import "fmt"

// Neighborhood defines which cells compose a rule lookup key: the width
// cells centered on a position, with out-of-range indexes resolved by the
// configured boundary mode.
type Neighborhood struct {
	width    int
	radius   int
	boundary Boundary
}

// NewNeighborhood builds a Neighborhood of the given width. Width must be a
// positive odd integer so the neighborhood is symmetric around the center.
func NewNeighborhood(width int, boundary Boundary) (*Neighborhood, error) {
	if width < 1 || width%2 == 0 {
		return nil, &ConfigError{Field: "width", Reason: fmt.Sprintf("must be a positive odd integer, got %d", width)}
	}
	return &Neighborhood{width: width, radius: width / 2, boundary: boundary}, nil
}

// Width returns the number of cells in the neighborhood, center included.
func (n *Neighborhood) Width() int { return n.width }

// Boundary returns the configured boundary mode.
func (n *Neighborhood) Boundary() Boundary { return n.boundary }

// Collect fills dst with the states of the width cells centered on pos,
// leftmost first. dst must have length Width. Collect is pure and is defined
// for every pos in [0, lat.Len()), edges included: Periodic treats the
// lattice as circular, Fixed substitutes the fill state, and Reflective
// mirrors indexes at the edges (index -1 resolves to 1, index length
// resolves to length-2, folding repeatedly for lattices smaller than the
// overhang; a single-cell lattice resolves every neighbor to its only cell).
func (n *Neighborhood) Collect(lat *Lattice, pos int, dst []CellState) error {
	if len(dst) != n.width {
		return &ConfigError{Field: "neighborhood", Reason: fmt.Sprintf("destination length %d does not match width %d", len(dst), n.width)}
	}
	if pos < 0 || pos >= lat.Len() {
		return &BoundsError{Kind: "lattice", Index: pos, Limit: lat.Len()}
	}
	length := lat.Len()
	for i := 0; i < n.width; i++ {
		idx := pos - n.radius + i
		if idx >= 0 && idx < length {
			dst[i] = lat.cells[idx]
			continue
		}
		switch n.boundary.Kind {
		case Periodic:
			dst[i] = lat.cells[((idx%length)+length)%length]
		case Fixed:
			dst[i] = n.boundary.Fill
		case Reflective:
			dst[i] = lat.cells[reflect(idx, length)]
		}
	}
	return nil
}

// reflect folds an out-of-range index back into [0, length) by mirroring at
// the edges without repeating the edge cell. For length 1 every index folds
// to 0.
func reflect(idx, length int) int {
	if length == 1 {
		return 0
	}
	for idx < 0 || idx >= length {
		if idx < 0 {
			idx = -idx
		}
		if idx >= length {
			idx = 2*(length-1) - idx
		}
	}
	return idx
}

package automata

import "fmt"

// SliceSpec names a [Start, Start+Steps) window of generations, validated
// eagerly against the history it is applied to.
type SliceSpec struct {
	Start int
	Steps int
}

// History is the append-only record of generations produced by a run.
// Index 0 is the initial generation. Only the evolver appends; once a run
// has left the Running phase the history is safe for concurrent readers.
//
// With a retention limit, only the most recent keepLast generations stay
// retrievable: evicted indexes still count toward Len but reading them
// fails with a BoundsError.
type History struct {
	keepLast int
	first    int // index of the oldest retained generation
	retained []*Lattice
}

// NewHistory creates an empty history. keepLast <= 0 retains every
// generation; a positive keepLast keeps a ring of the last keepLast.
func NewHistory(keepLast int) *History {
	return &History{keepLast: keepLast}
}

// append records one generation, evicting the oldest retained one when a
// retention limit is set. Evolver use only.
func (h *History) append(lat *Lattice) {
	h.retained = append(h.retained, lat)
	if h.keepLast > 0 && len(h.retained) > h.keepLast {
		h.retained[0] = nil
		h.retained = h.retained[1:]
		h.first++
	}
}

// Len returns the total number of generations appended, evicted ones
// included.
func (h *History) Len() int { return h.first + len(h.retained) }

// FirstRetained returns the index of the oldest generation still
// retrievable.
func (h *History) FirstRetained() int { return h.first }

// At returns the generation at index i. It fails with a BoundsError for
// i outside [0, Len()) and for indexes evicted by the retention limit.
func (h *History) At(i int) (*Lattice, error) {
	if i < 0 || i >= h.Len() {
		return nil, &BoundsError{Kind: "history", Index: i, Limit: h.Len()}
	}
	if i < h.first {
		return nil, &BoundsError{Kind: "history", Index: i, Limit: h.Len()}
	}
	return h.retained[i-h.first], nil
}

// Last returns the most recent generation, or nil for an empty history.
func (h *History) Last() *Lattice {
	if len(h.retained) == 0 {
		return nil
	}
	return h.retained[len(h.retained)-1]
}

// Slice returns the generations in the window named by spec. The window
// must satisfy Start in [0, Len()), Steps >= 1, Start+Steps <= Len(), and
// must not reach below the retention horizon.
func (h *History) Slice(spec SliceSpec) ([]*Lattice, error) {
	if spec.Start < 0 || spec.Start >= h.Len() {
		return nil, &BoundsError{Kind: "history", Index: spec.Start, Limit: h.Len()}
	}
	if spec.Steps < 1 {
		return nil, &ConfigError{Field: "slice", Reason: fmt.Sprintf("steps must be at least 1, got %d", spec.Steps)}
	}
	if spec.Start+spec.Steps > h.Len() {
		return nil, &BoundsError{Kind: "history", Index: spec.Start + spec.Steps - 1, Limit: h.Len()}
	}
	if spec.Start < h.first {
		return nil, &BoundsError{Kind: "history", Index: spec.Start, Limit: h.Len()}
	}
	out := make([]*Lattice, spec.Steps)
	copy(out, h.retained[spec.Start-h.first:spec.Start-h.first+spec.Steps])
	return out, nil
}

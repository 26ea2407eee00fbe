// Package render turns a finished History into text or images. It consumes
// the engine's output and never feeds back into stepping.
package render

import (
	"fmt"
	"strings"

	"github.com/orome/automata-go/automata"
)

// Rows renders each generation in the window as one line of characters.
// A nil spec renders every retained generation. An empty glyphs string maps
// states to alphabet digits; otherwise state s maps to the s-th rune of
// glyphs, so " #" renders a binary automaton as spaces and hashes.
func Rows(h *automata.History, spec *automata.SliceSpec, glyphs string) ([]string, error) {
	lats, err := window(h, spec)
	if err != nil {
		return nil, err
	}
	var mapping []rune
	if glyphs != "" {
		mapping = []rune(glyphs)
	}
	rows := make([]string, len(lats))
	for i, lat := range lats {
		if mapping == nil {
			rows[i] = lat.String()
			continue
		}
		var b strings.Builder
		for _, s := range lat.States() {
			if int(s) >= len(mapping) {
				return nil, fmt.Errorf("glyph string %q too short for state %d", glyphs, s)
			}
			b.WriteRune(mapping[s])
		}
		rows[i] = b.String()
	}
	return rows, nil
}

// Text renders the window as one newline-joined block.
func Text(h *automata.History, spec *automata.SliceSpec, glyphs string) (string, error) {
	rows, err := Rows(h, spec, glyphs)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n"), nil
}

// window resolves spec against h, defaulting to every retained generation.
func window(h *automata.History, spec *automata.SliceSpec) ([]*automata.Lattice, error) {
	if spec == nil {
		spec = &automata.SliceSpec{Start: h.FirstRetained(), Steps: h.Len() - h.FirstRetained()}
	}
	return h.Slice(*spec)
}

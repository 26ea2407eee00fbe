// Package automata provides the core engine for simulating one-dimensional
// multi-state cellular automata of the kind catalogued in Wolfram's
// A New Kind of Science.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - rule.go: rule identifier decoding and the neighborhood lookup table
//   - lattice.go: one generation of cell states and the seeding policies
//   - evolver.go: the stepping loop, phase machine, and cancellation
//
// # Architecture
//
// The engine is a chain of small immutable-once-built values: a Rule decodes
// an identifier into a total lookup table, a Neighborhood resolves edge cells
// per a Boundary, a Lattice holds one generation, and the Evolver applies
// Rule+Neighborhood to every position of the current Lattice to produce the
// next one, appending each result to an append-only History.
//
// Display surfaces live in sub-packages and consume a finished History:
//   - automata/render: text and static/animated image rendering
//   - automata/viewer: interactive viewer (requires the ebiten build tag)
//
// The engine itself performs no rendering and no file I/O.
package automata

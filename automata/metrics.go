// Tracks run-wide statistics over the produced generations.

package automata

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about a run for final reporting: how much
// work was done and how the live-cell density evolved. Accumulated across
// Advance calls on the same evolver.
type Metrics struct {
	Generations    int     // generations produced (initial excluded)
	CellsEvaluated int64   // rule lookups performed
	StateCounts    []int64 // cells observed per state, across all generations
	Elapsed        time.Duration

	densities []float64 // per-generation fraction of non-zero cells
}

// NewMetrics creates a Metrics for the given base.
func NewMetrics(base int) *Metrics {
	return &Metrics{StateCounts: make([]int64, base)}
}

// observe folds one appended generation into the aggregates.
func (m *Metrics) observe(lat *Lattice) {
	counts := lat.Counts()
	active := 0
	for s, n := range counts {
		m.StateCounts[s] += int64(n)
		if s != 0 {
			active += n
		}
	}
	m.densities = append(m.densities, float64(active)/float64(lat.Len()))
}

// DensityMean returns the mean fraction of non-zero cells per generation.
func (m *Metrics) DensityMean() float64 {
	if len(m.densities) == 0 {
		return 0
	}
	return stat.Mean(m.densities, nil)
}

// DensityStdDev returns the standard deviation of the per-generation
// non-zero-cell fraction.
func (m *Metrics) DensityStdDev() float64 {
	if len(m.densities) < 2 {
		return 0
	}
	return stat.StdDev(m.densities, nil)
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Run Metrics ===")
	fmt.Printf("Generations        : %d\n", m.Generations)
	fmt.Printf("Cells Evaluated    : %d\n", m.CellsEvaluated)
	fmt.Printf("Elapsed            : %s\n", m.Elapsed)
	fmt.Printf("Density Mean       : %.4f\n", m.DensityMean())
	fmt.Printf("Density StdDev     : %.4f\n", m.DensityStdDev())
	for s, n := range m.StateCounts {
		if n > 0 {
			fmt.Printf("Cells In State %c   : %d\n", digitOf(CellState(s)), n)
		}
	}
}

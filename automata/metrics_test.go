package automata

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_AccumulateOverRun(t *testing.T) {
	// GIVEN rule 170 on a periodic lattice, which only ever shifts the
	// initial generation, keeping the density constant
	ev, err := NewEvolver(Config{
		Rule:        big.NewInt(170),
		Base:        2,
		Width:       3,
		Cells:       10,
		Generations: 8,
		Boundary:    PeriodicBoundary(),
		Seeding:     SeedPolicy{Kind: SeedPattern, Pattern: "11000"},
		Workers:     1,
	})
	require.NoError(t, err)
	require.NoError(t, ev.Run())

	m := ev.Metrics()
	assert.Equal(t, 8, m.Generations)
	assert.Equal(t, int64(80), m.CellsEvaluated)

	// 2 active cells of 10, in each of 9 observed generations.
	assert.Equal(t, int64(18), m.StateCounts[1])
	assert.Equal(t, int64(72), m.StateCounts[0])
	assert.InDelta(t, 0.2, m.DensityMean(), 1e-12)
	assert.InDelta(t, 0.0, m.DensityStdDev(), 1e-12)
}

func TestMetrics_EmptyDefaults(t *testing.T) {
	m := NewMetrics(2)
	assert.Zero(t, m.DensityMean())
	assert.Zero(t, m.DensityStdDev())
}

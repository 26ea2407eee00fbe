package automata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Phase is the evolver's lifecycle state.
type Phase string

const (
	// PhaseReady means the evolver is constructed and no generation beyond
	// the initial one has been produced.
	PhaseReady Phase = "ready"
	// PhaseRunning means an Advance call is stepping.
	PhaseRunning Phase = "running"
	// PhaseDone means the requested generation count was reached. Advance
	// may be called again to resume from the last lattice.
	PhaseDone Phase = "done"
	// PhaseCancelled means the run's context was cancelled between
	// generations; the history produced so far is intact and the run may
	// be resumed.
	PhaseCancelled Phase = "cancelled"
	// PhaseFailed means a step raised an unrecoverable error. Further
	// Advance calls return the recorded error.
	PhaseFailed Phase = "failed"
)

// Evolver orchestrates repeated application of Rule+Neighborhood to the
// current lattice, producing successive generations and appending each to
// an append-only History.
//
// Each cell's next state depends only on the previous generation, never on
// sibling cells' next states: every step writes into a freshly allocated
// buffer while the previous generation stays read-only. That one-generation
// lag is the engine's defining correctness property.
type Evolver struct {
	cfg     Config
	rule    *Rule
	neigh   *Neighborhood
	current *Lattice
	history *History
	metrics *Metrics

	phase   Phase
	failure error
}

// NewEvolver assembles a Rule, Neighborhood, seeded initial Lattice, and
// History from cfg. All configuration errors surface here, before any
// generation is computed. The initial lattice is appended as generation 0.
func NewEvolver(cfg Config) (*Evolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := NewRule(cfg.Rule, cfg.Base, cfg.Width)
	if err != nil {
		return nil, err
	}
	neigh, err := NewNeighborhood(cfg.Width, cfg.Boundary)
	if err != nil {
		return nil, err
	}
	initial, err := Seed(cfg.Cells, cfg.Base, cfg.Seeding)
	if err != nil {
		return nil, err
	}

	history := NewHistory(cfg.KeepLast)
	history.append(initial)
	metrics := NewMetrics(cfg.Base)
	metrics.observe(initial)

	return &Evolver{
		cfg:     cfg,
		rule:    rule,
		neigh:   neigh,
		current: initial,
		history: history,
		metrics: metrics,
		phase:   PhaseReady,
	}, nil
}

// Run produces the configured number of generations with no cancellation.
func (e *Evolver) Run() error {
	return e.Advance(context.Background(), e.cfg.Generations)
}

// Advance produces n further generations from the last produced lattice.
// It may be called again after Done or Cancelled to resume the run:
// Advance(5) followed by Advance(5) yields the same history as a single
// Advance(10).
//
// Cancellation is checked between generations, never mid-generation; on
// cancellation the evolver transitions to Cancelled, keeps everything
// appended so far, and returns the context's error. A step failure appends
// nothing for that generation, transitions to Failed, and is returned
// (wrapped in a StepError) from this and every later Advance call.
func (e *Evolver) Advance(ctx context.Context, n int) error {
	if e.phase == PhaseFailed {
		return e.failure
	}
	if n < 0 {
		return &ConfigError{Field: "steps", Reason: fmt.Sprintf("generation count must be non-negative, got %d", n)}
	}

	e.phase = PhaseRunning
	start := time.Now()
	defer func() { e.metrics.Elapsed += time.Since(start) }()

	for g := 0; g < n; g++ {
		if err := ctx.Err(); err != nil {
			e.phase = PhaseCancelled
			return fmt.Errorf("run cancelled after generation %d: %w", e.history.Len()-1, err)
		}
		next, err := e.step()
		if err != nil {
			e.phase = PhaseFailed
			e.failure = &StepError{Generation: e.history.Len(), Err: err}
			return e.failure
		}
		e.current = next
		e.history.append(next)
		e.metrics.Generations++
		e.metrics.CellsEvaluated += int64(next.Len())
		e.metrics.observe(next)
		logrus.Debugf("[gen %04d] %s", e.history.Len()-1, next)
	}

	e.phase = PhaseDone
	return nil
}

// step materializes the next generation into a fresh buffer. Within the
// step, cells are independent reads of the previous generation, so the work
// may be chunked across workers writing disjoint ranges of the new buffer.
func (e *Evolver) step() (*Lattice, error) {
	length := e.current.Len()
	next := make([]CellState, length)

	workers := e.cfg.Workers
	if workers > length {
		workers = length
	}
	if workers <= 1 {
		scratch := make([]CellState, e.neigh.Width())
		if err := e.evolveRange(next, 0, length, scratch); err != nil {
			return nil, err
		}
		return newLattice(next, e.current.base), nil
	}

	chunk := (length + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > length {
			hi = length
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			scratch := make([]CellState, e.neigh.Width())
			errs[w] = e.evolveRange(next, lo, hi, scratch)
		}(w, lo, hi)
	}
	wg.Wait()

	// Chunks are ordered by position, so the first non-nil slot is the
	// error at the lowest failing position — deterministic regardless of
	// goroutine scheduling.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return newLattice(next, e.current.base), nil
}

// evolveRange computes next[lo:hi] from the current generation, reusing
// scratch as the neighborhood buffer.
func (e *Evolver) evolveRange(next []CellState, lo, hi int, scratch []CellState) error {
	for pos := lo; pos < hi; pos++ {
		if err := e.neigh.Collect(e.current, pos, scratch); err != nil {
			return err
		}
		s, err := e.rule.Apply(scratch)
		if err != nil {
			return err
		}
		next[pos] = s
	}
	return nil
}

// Phase returns the evolver's lifecycle state.
func (e *Evolver) Phase() Phase { return e.phase }

// History returns the generations produced so far. Callers must treat it as
// read-only while the evolver is Running.
func (e *Evolver) History() *History { return e.history }

// Metrics returns the run statistics accumulated so far.
func (e *Evolver) Metrics() *Metrics { return e.metrics }

// Rule returns the decoded rule driving the run.
func (e *Evolver) Rule() *Rule { return e.rule }

// Config returns the run's configuration.
func (e *Evolver) Config() Config { return e.cfg }

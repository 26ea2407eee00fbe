//go:build ebiten

// Package viewer provides an interactive window for watching a run evolve.
// It requires the ebiten build tag; without it, Run reports how to enable
// the viewer instead of opening a window.
package viewer

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/orome/automata-go/automata"
	"github.com/orome/automata-go/automata/render"
)

// Options configures the viewer window.
type Options struct {
	Scale int // pixels per cell
	TPS   int // generations per second
	Rows  int // visible generations; the display scrolls past this
}

// game adapts an evolver to the ebiten.Game interface: each tick advances
// one generation and the window shows the most recent Rows generations.
type game struct {
	ev      *automata.Evolver
	rng     *automata.PartitionedRNG
	palette []color.RGBA
	opts    Options
	frame   *ebiten.Image
	pix     []byte
	paused  bool
	stepOne bool
	err     error
}

// Run opens a window and advances the evolver one generation per tick until
// the window is closed or Q/Escape is pressed. Space pauses, N steps once
// while paused, R restarts the run from a fresh random lattice.
func Run(ev *automata.Evolver, opts Options) error {
	if opts.Scale < 1 {
		opts.Scale = 4
	}
	if opts.TPS < 1 {
		opts.TPS = 30
	}
	if opts.Rows < 1 {
		opts.Rows = 200
	}
	width := ev.Config().Cells

	g := &game{
		ev:      ev,
		rng:     automata.NewPartitionedRNG(automata.NewSimulationKey(ev.Config().Seeding.Seed)),
		palette: render.DefaultPalette(ev.Config().Base),
		opts:    opts,
		pix:     make([]byte, width*opts.Rows*4),
	}

	ebiten.SetWindowTitle("automata — rule " + ev.Rule().Identifier().String())
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(width*opts.Scale, opts.Rows*opts.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return g.err
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOne = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reseed(); err != nil {
			g.err = err
			return ebiten.Termination
		}
	}
	if g.paused && !g.stepOne {
		return nil
	}
	g.stepOne = false
	if err := g.ev.Advance(context.Background(), 1); err != nil {
		g.err = err
		return ebiten.Termination
	}
	return nil
}

// reseed restarts the run on a fresh uniform-random lattice. Seeds come from
// the viewer's own RNG subsystem, so reseeds within one session are
// reproducible from the original run seed.
func (g *game) reseed() error {
	cfg := g.ev.Config()
	cfg.Seeding = automata.SeedPolicy{
		Kind:         automata.SeedRandom,
		Distribution: automata.Uniform,
		Seed:         g.rng.ForSubsystem(automata.SubsystemViewer).Int63(),
	}
	ev, err := automata.NewEvolver(cfg)
	if err != nil {
		return err
	}
	g.ev = ev
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	h := g.ev.History()
	width := g.ev.Config().Cells

	// Show the last Rows retained generations, top-aligned until the run
	// outgrows the window, then scrolling.
	end := h.Len()
	start := end - g.opts.Rows
	if start < h.FirstRetained() {
		start = h.FirstRetained()
	}
	for row := 0; row < g.opts.Rows; row++ {
		gen := start + row
		base := row * width * 4
		if gen >= end {
			for i := base; i < base+width*4; i++ {
				g.pix[i] = 0
			}
			continue
		}
		lat, err := h.At(gen)
		if err != nil {
			continue
		}
		for x, s := range lat.States() {
			col := g.palette[int(s)]
			o := base + x*4
			g.pix[o+0] = col.R
			g.pix[o+1] = col.G
			g.pix[o+2] = col.B
			g.pix[o+3] = col.A
		}
	}

	if g.frame == nil {
		g.frame = ebiten.NewImage(width, g.opts.Rows)
	}
	g.frame.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.frame, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ev.Config().Cells * g.opts.Scale, g.opts.Rows * g.opts.Scale
}

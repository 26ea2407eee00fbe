//go:build !ebiten

// Package viewer provides an interactive window for watching a run evolve.
// It requires the ebiten build tag; without it, Run reports how to enable
// the viewer instead of opening a window.
package viewer

import (
	"errors"

	"github.com/orome/automata-go/automata"
)

// Options configures the viewer window.
type Options struct {
	Scale int // pixels per cell
	TPS   int // generations per second
	Rows  int // visible generations; the display scrolls past this
}

// ErrViewerDisabled is returned by Run in builds without the ebiten tag.
var ErrViewerDisabled = errors.New("the interactive viewer requires the ebiten build tag; rebuild with `go build -tags ebiten`")

// Run reports that the viewer is unavailable in this build.
func Run(ev *automata.Evolver, opts Options) error {
	_ = ev
	_ = opts
	return ErrViewerDisabled
}

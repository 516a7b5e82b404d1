//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegame/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a one-line status readout over the simulation view. Tab
// toggles it.
type Overlay struct {
	sim     core.Sim
	stats   core.StatsProvider
	visible bool
}

// NewOverlay constructs an overlay for the provided simulation. Progress
// counters appear only when the sim exposes them.
func NewOverlay(sim core.Sim) *Overlay {
	stats, _ := sim.(core.StatsProvider)
	return &Overlay{sim: sim, stats: stats, visible: true}
}

// Update handles overlay input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw paints the status line in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if !o.visible {
		return
	}
	line := o.sim.Name()
	if o.stats != nil {
		line = fmt.Sprintf("%s  gen %d  pop %d", line, o.stats.Generation(), o.stats.Population())
	}
	if paused {
		line += "  [paused]"
	}
	face := basicfont.Face7x13
	text.Draw(screen, line, face, 7, 17, color.Black)
	text.Draw(screen, line, face, 6, 16, color.RGBA{R: 120, G: 230, B: 120, A: 255})
}

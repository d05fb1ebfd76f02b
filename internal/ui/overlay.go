//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const helpText = "space pause | n step | r reset | s reseed | h help | q quit"

// Overlay draws the help line and a status readout over the scene.
type Overlay struct {
	visible bool
	status  string
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay { return &Overlay{visible: true} }

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// SetStatus replaces the status readout shown under the help line.
func (o *Overlay) SetStatus(status string) { o.status = status }

// Draw renders the overlay when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	ebitenutil.DebugPrintAt(screen, helpText, 8, 8)
	if o.status != "" {
		ebitenutil.DebugPrintAt(screen, o.status, 8, 24)
	}
}

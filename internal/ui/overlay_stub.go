//go:build !ebiten

package ui

// Overlay is a placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// SetStatus is a no-op placeholder.
func (o *Overlay) SetStatus(string) {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any) {}

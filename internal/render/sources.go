// Package render turns simulation output into ebiten draw calls.
package render

import (
	"iter"

	"emberfall/internal/core"
	"emberfall/internal/particles"
)

// PixelSource is implemented by scenes that materialize into an RGBA
// buffer sized PixelSize().W * PixelSize().H * 4, row-major.
type PixelSource interface {
	PixelSize() core.Size
	Pixels(dst []byte)
}

// TrailSource is implemented by scenes that expose trail polylines and
// point lights positioned on a world-space camera plane.
type TrailSource interface {
	View() (w, h float64)
	Trails() iter.Seq[particles.Polyline]
	Lights() iter.Seq[particles.Light]
}

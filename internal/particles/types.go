// Package particles implements a trail-emitting particle system with a
// two-phase motion model: free-fall attraction toward a target point
// followed by a scripted cubic-Bézier approach path.
package particles

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is one sample of a renderable trail polyline.
type Vertex struct {
	Pos   r3.Vec
	Width float64
}

// Polyline is a trail strip ordered newest to oldest.
type Polyline []Vertex

// Light describes a point light emitted by a live particle.
type Light struct {
	Pos    r3.Vec
	Color  [3]float64
	Radius float64
}

// depthWidth fakes perspective by thinning widths at positions that sit
// further away on the z axis.
func depthWidth(pos r3.Vec, base float64) float64 {
	return base / math.Max(0.5, (pos.Z+1)/2)
}

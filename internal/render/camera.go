package render

import "gonum.org/v1/gonum/spatial/r3"

// Camera maps world coordinates on the view plane to screen pixels. The
// view is centered on the origin with y pointing up; depth carries no
// perspective here, it only modulates widths upstream.
type Camera struct {
	ViewW, ViewH     float64
	ScreenW, ScreenH float64
}

// Project converts a world position to screen coordinates.
func (c Camera) Project(p r3.Vec) (x, y float32) {
	return float32((p.X/c.ViewW + 0.5) * c.ScreenW),
		float32((0.5 - p.Y/c.ViewH) * c.ScreenH)
}

// WidthToPixels converts a world-space width to pixels.
func (c Camera) WidthToPixels(w float64) float32 {
	return float32(w / c.ViewW * c.ScreenW)
}

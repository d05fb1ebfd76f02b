//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"emberfall/internal/particles"
)

// TrailPainter strokes particle trails and their point lights.
type TrailPainter struct {
	cam Camera
}

// NewTrailPainter constructs a painter projecting through cam.
func NewTrailPainter(cam Camera) *TrailPainter {
	return &TrailPainter{cam: cam}
}

// Draw renders src: soft light discs first, trail strokes on top.
func (tp *TrailPainter) Draw(dst *ebiten.Image, src TrailSource) {
	for light := range src.Lights() {
		x, y := tp.cam.Project(light.Pos)
		r := tp.cam.WidthToPixels(light.Radius)
		if r < 1 {
			continue
		}
		vector.DrawFilledCircle(dst, x, y, r, lightColor(light), true)
	}
	for strip := range src.Trails() {
		tp.strokeStrip(dst, strip)
	}
}

// strokeStrip draws one polyline segment by segment, fading toward the
// tail. Vertices arrive newest to oldest.
func (tp *TrailPainter) strokeStrip(dst *ebiten.Image, strip particles.Polyline) {
	n := len(strip)
	for i := 0; i+1 < n; i++ {
		a, b := strip[i], strip[i+1]
		x0, y0 := tp.cam.Project(a.Pos)
		x1, y1 := tp.cam.Project(b.Pos)

		width := tp.cam.WidthToPixels((a.Width + b.Width) / 2)
		if width < 1 {
			width = 1
		}

		fade := 1 - float64(i)/float64(n)
		vector.StrokeLine(dst, x0, y0, x1, y1, width, strokeColor(fade), true)
	}
}

// strokeColor is a white streak with a blue glow, premultiplied.
func strokeColor(fade float64) color.RGBA {
	return color.RGBA{
		R: uint8(200 * fade),
		G: uint8(220 * fade),
		B: uint8(240 * fade),
		A: uint8(240 * fade),
	}
}

// lightColor converts the particle's light color into a translucent disc
// color, premultiplied.
func lightColor(l particles.Light) color.RGBA {
	const alpha = 0.18
	return color.RGBA{
		R: uint8(l.Color[0] * 255 * alpha),
		G: uint8(l.Color[1] * 255 * alpha),
		B: uint8(l.Color[2] * 255 * alpha),
		A: uint8(255 * alpha),
	}
}

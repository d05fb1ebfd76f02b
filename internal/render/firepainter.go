//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"emberfall/internal/core"
)

// FirePainter uploads a pixel source into a texture and blits it scaled.
type FirePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFirePainter allocates a painter for a pixel buffer of the given size.
func NewFirePainter(size core.Size) *FirePainter {
	return &FirePainter{
		w:   size.W,
		h:   size.H,
		img: ebiten.NewImage(size.W, size.H),
		buf: make([]byte, 4*size.W*size.H),
	}
}

// Blit materializes src into the painter texture and draws it onto dst at
// the given integer scale.
func (fp *FirePainter) Blit(dst *ebiten.Image, src PixelSource, scale int) {
	src.Pixels(fp.buf)
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

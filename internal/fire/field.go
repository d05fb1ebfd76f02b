// Package fire implements a rising-fire cellular automaton over a scalar
// heat grid, in the style of the PSX Doom fire effect.
package fire

import (
	"errors"

	"emberfall/internal/core"
)

// ErrInvalidDimension reports a degenerate grid size at construction.
var ErrInvalidDimension = errors.New("fire: width and height must be positive")

// Field owns a 2D grid of heat values in [0, 1]. The bottom row is seeded
// to full heat at construction and acts as the permanent fuel source; heat
// propagates upward one row per generation with random sideways wind and a
// random cooling loss.
type Field struct {
	grid        *core.FloatGrid
	coolingRate float64
	rng         *core.RNG
}

// New allocates a heat field with the given dimensions and mean cooling
// rate per upward step. All cells start at zero except the bottom row,
// which is set to 1.0 and never written again.
func New(w, h int, coolingRate float64) (*Field, error) {
	if w < 1 || h < 1 {
		return nil, ErrInvalidDimension
	}
	f := &Field{
		grid:        core.NewFloatGrid(w, h),
		coolingRate: coolingRate,
		rng:         core.NewRNG(1),
	}
	f.seedBottomRow()
	return f, nil
}

// Width returns the grid width in cells.
func (f *Field) Width() int { return f.grid.W }

// Height returns the grid height in cells.
func (f *Field) Height() int { return f.grid.H }

// Heat exposes the raw heat values, row-major.
func (f *Field) Heat() []float64 { return f.grid.Cells() }

// Reset clears all heat, reseeds the bottom row and the wind RNG.
func (f *Field) Reset(seed int64) {
	f.rng = core.NewRNG(seed)
	f.grid.Clear()
	f.seedBottomRow()
}

func (f *Field) seedBottomRow() {
	cells := f.grid.Cells()
	for i := len(cells) - f.grid.W; i < len(cells); i++ {
		cells[i] = 1
	}
}

// Propagate advances the field by one generation. Every cell from the
// second row down, bottom row included, is a heat source whose cooled
// value lands one row up, shifted by a wind offset drawn from
// {-1, 0, 1, 2}. The target index is clamped so it never leaves the rows
// above the bottom row; the seeded bottom row is never written. Writes
// land in the same buffer, so a target can be overwritten by a later
// column within the same generation; the last write wins.
func (f *Field) Propagate() {
	w, h := f.grid.W, f.grid.H
	cells := f.grid.Cells()
	coolLo := f.coolingRate - 0.9*f.coolingRate
	coolHi := f.coolingRate + 0.9*f.coolingRate
	lastTarget := len(cells) - w - 1

	for x := 0; x < w; x++ {
		for y := 1; y < h; y++ {
			src := f.grid.Index(x, y)
			wind := f.rng.IntRange(-1, 3)
			target := src - w + wind
			if target < 0 {
				target = 0
			} else if target > lastTarget {
				target = lastTarget
			}
			heat := cells[src] - f.rng.FloatRange(coolLo, coolHi)
			if heat < 0 {
				heat = 0
			}
			cells[target] = heat
		}
	}
}

// Pixels fills dst with the current frame's colors as row-major RGBA,
// 4 bytes per cell, suitable for upload as a 2D texture. dst must hold at
// least Width*Height*4 bytes.
func (f *Field) Pixels(dst []byte) {
	for i, heat := range f.grid.Cells() {
		idx := int(heat * paletteSize)
		if idx > paletteSize-1 {
			idx = paletteSize - 1
		}
		c := paletteLUT[idx]
		base := i * 4
		dst[base+0] = c[0]
		dst[base+1] = c[1]
		dst[base+2] = c[2]
		dst[base+3] = c[3]
	}
}

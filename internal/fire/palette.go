package fire

import "math"

// paletteSize is the number of quantized entries in the heat color ramp.
const paletteSize = 32

// gradientStops define the fire ramp in sRGB with straight alpha:
// transparent black through dark red and orange up to white.
var gradientStops = []struct {
	knot       float64
	r, g, b, a float64
}{
	{0.00, 0.000, 0.000, 0.000, 0.0},
	{0.30, 0.250, 0.015, 0.000, 0.8},
	{0.50, 0.450, 0.170, 0.070, 1.0},
	{0.80, 0.850, 0.506, 0.161, 1.0},
	{0.95, 0.960, 0.812, 0.154, 1.0},
	{1.00, 1.000, 1.000, 1.000, 1.0},
}

var paletteLUT = buildPalette()

// buildPalette samples the gradient into a fixed lookup table. Color
// channels are converted to linear light before interpolation and the
// interpolated values are quantized to 8 bits.
func buildPalette() [paletteSize][4]byte {
	var lut [paletteSize][4]byte
	for i := range lut {
		pos := float64(i) / float64(paletteSize-1)
		r, g, b, a := sampleGradient(pos)
		lut[i] = [4]byte{quant(r), quant(g), quant(b), quant(a)}
	}
	return lut
}

// sampleGradient evaluates the piecewise-linear ramp at pos in [0, 1].
func sampleGradient(pos float64) (r, g, b, a float64) {
	stops := gradientStops
	first := stops[0]
	if pos <= first.knot {
		return srgbToLinear(first.r), srgbToLinear(first.g), srgbToLinear(first.b), first.a
	}
	for i := 0; i+1 < len(stops); i++ {
		lo, hi := stops[i], stops[i+1]
		if pos > hi.knot {
			continue
		}
		t := (pos - lo.knot) / (hi.knot - lo.knot)
		r = lerp(srgbToLinear(lo.r), srgbToLinear(hi.r), t)
		g = lerp(srgbToLinear(lo.g), srgbToLinear(hi.g), t)
		b = lerp(srgbToLinear(lo.b), srgbToLinear(hi.b), t)
		a = lerp(lo.a, hi.a, t)
		return r, g, b, a
	}
	last := stops[len(stops)-1]
	return srgbToLinear(last.r), srgbToLinear(last.g), srgbToLinear(last.b), last.a
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func quant(c float64) byte {
	v := math.Round(c * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

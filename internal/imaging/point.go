package imaging

import "math"

// Mono converts the buffer to grayscale, or to sepia tone when sepia is true.
//
// For each pixel the brightness is 0.3*R + 0.6*G + 0.1*B. Grayscale sets all
// three color channels to the truncated brightness. Sepia sets red to the
// brightness, green to 0.6 of it and blue to 0.4 of it, each truncated.
// Alpha is never changed.
func Mono(b *Buffer, sepia bool) {
	for _, row := range b.Rows {
		for c := range row {
			p := &row[c]
			br := p.brightness()
			if sepia {
				p.R = brightnessChannel(br)
				p.G = brightnessChannel(float64(0.6 * br))
				p.B = brightnessChannel(float64(0.4 * br))
			} else {
				v := brightnessChannel(br)
				p.R, p.G, p.B = v, v, v
			}
		}
	}
}

// Dered removes the red channel from every pixel.
func Dered(b *Buffer) {
	for _, row := range b.Rows {
		for c := range row {
			row[c].R = 0
		}
	}
}

// Vignette darkens the buffer toward its corners, simulating an antique lens.
//
// The factor for a pixel at distance d from the center is 1 - (d/H)^2, where
// H is the distance from the center to a corner, clamped to [0,1]. A 1x1
// buffer has no extent and is multiplied by 1. Alpha is never changed.
func Vignette(b *Buffer) {
	cr := float64(b.Height()-1) / 2
	cc := float64(b.Width()-1) / 2
	half := math.Hypot(cr, cc)

	for r, row := range b.Rows {
		for c := range row {
			f := 1.0
			if half > 0 {
				d := math.Hypot(float64(r)-cr, float64(c)-cc)
				ratio := d / half
				f = clampUnit(1 - ratio*ratio)
			}
			p := &row[c]
			p.R = toChannel(float64(p.R) * f)
			p.G = toChannel(float64(p.G) * f)
			p.B = toChannel(float64(p.B) * f)
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

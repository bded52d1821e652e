package imaging

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Pixel is a non-premultiplied color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type Pixel struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// String formats the pixel as "(r,g,b,a)".
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p.R, p.G, p.B, p.A)
}

// Hex returns the pixel color as "#rrggbb". Alpha is excluded.
func (p Pixel) Hex() string {
	return p.colorful().Hex()
}

// HSL returns the pixel color in HSL space with integer components
// truncated toward zero. Alpha is ignored.
func (p Pixel) HSL() HSLColor {
	h, s, l := p.colorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)}
}

// ColorSample is one pixel of a buffer in several notations.
type ColorSample struct {
	Row  int      `json:"row"`
	Col  int      `json:"col"`
	RGBA Pixel    `json:"rgba"`
	Hex  string   `json:"hex"` // "#rrggbb", alpha excluded
	HSL  HSLColor `json:"hsl"`
}

// SampleColor returns the pixel at (row, col) as hex, RGBA and HSL.
//
// Returns an error wrapping ErrInvalidArgument if the coordinates are
// outside the buffer.
func SampleColor(b *Buffer, row, col int) (*ColorSample, error) {
	if row < 0 || row >= b.Height() || col < 0 || col >= b.Width() {
		return nil, fmt.Errorf("%w: coordinates (%d,%d) outside a %dx%d image",
			ErrInvalidArgument, row, col, b.Height(), b.Width())
	}
	p := b.Rows[row][col]
	return &ColorSample{Row: row, Col: col, RGBA: p, Hex: p.Hex(), HSL: p.HSL()}, nil
}

func (p Pixel) colorful() colorful.Color {
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
}

// brightness returns 0.3*R + 0.6*G + 0.1*B.
//
// Each product is converted explicitly so the compiler cannot fuse the
// multiply-adds.
func (p Pixel) brightness() float64 {
	r := float64(0.3 * float64(p.R))
	g := float64(0.6 * float64(p.G))
	b := float64(0.1 * float64(p.B))
	return r + g + b
}

// truncSlack absorbs binary representation error before a brightness is
// truncated. Brightness values are exact multiples of 0.1 (sepia scales
// them by 0.6 and 0.4), so a true result is never within this distance
// below an integer; without it 0.3*v + 0.6*v + 0.1*v truncates to v-1 for
// many v.
const truncSlack = 1e-9

// brightnessChannel converts a brightness-derived value to a channel.
func brightnessChannel(v float64) uint8 {
	return toChannel(v + truncSlack)
}

// toChannel truncates v toward zero and clamps it to the 0-255 range.
func toChannel(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

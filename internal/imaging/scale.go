package imaging

import (
	"fmt"
	"math"

	"github.com/nfnt/resize"
)

// MaxScaledSide is the largest width or height Scale will produce.
const MaxScaledSide = 1 << 16

// Scale resamples the buffer by factor using bilinear interpolation.
//
// The new size is trunc(width*factor) x trunc(height*factor), never less
// than one pixel per side. Like Transpose, the grid is replaced wholesale.
//
// Returns an error wrapping ErrInvalidArgument if factor is not a positive
// finite number, or if either side would exceed MaxScaledSide.
func Scale(b *Buffer, factor float64) error {
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return fmt.Errorf("%w: scale factor must be a positive number, got %v", ErrInvalidArgument, factor)
	}

	fw := float64(b.Width()) * factor
	fh := float64(b.Height()) * factor
	if fw > MaxScaledSide || fh > MaxScaledSide {
		return fmt.Errorf("%w: scale factor %v would make a %.0fx%.0f image, limit is %d per side",
			ErrInvalidArgument, factor, fw, fh, MaxScaledSide)
	}

	width := max(1, int(fw))
	height := max(1, int(fh))

	scaled := resize.Resize(uint(width), uint(height), b.Image(), resize.Bilinear)
	b.Rows = FromImage(scaled).Rows
	return nil
}

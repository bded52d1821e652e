package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Buffer is a rectangular grid of pixels stored as rows.
//
// Rows[r][c] addresses the pixel at row r (0 = top) and column c (0 = left).
// A well-formed buffer has at least one row, at least one column, and every
// row has the same length. Transforms that change the shape of the image
// (Transpose, Scale) replace Rows wholesale, so callers must hold a *Buffer
// rather than a copy of its Rows slice.
type Buffer struct {
	Rows [][]Pixel
}

// NewBuffer allocates a height x width buffer of transparent black pixels.
func NewBuffer(height, width int) *Buffer {
	return &Buffer{Rows: newGrid(height, width)}
}

func newGrid(height, width int) [][]Pixel {
	rows := make([][]Pixel, height)
	for r := range rows {
		rows[r] = make([]Pixel, width)
	}
	return rows
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return len(b.Rows)
}

// Width returns the length of the first row, or 0 for an empty buffer.
func (b *Buffer) Width() int {
	if len(b.Rows) == 0 {
		return 0
	}
	return len(b.Rows[0])
}

// Clone returns a deep copy of the buffer. The copy shares no backing
// storage with b, so it can serve as a read-only snapshot while b is
// overwritten.
func (b *Buffer) Clone() *Buffer {
	rows := make([][]Pixel, len(b.Rows))
	for r, row := range b.Rows {
		rows[r] = make([]Pixel, len(row))
		copy(rows[r], row)
	}
	return &Buffer{Rows: rows}
}

// Validate reports whether b is a well-formed buffer.
//
// The returned error wraps ErrCorruptBuffer and describes the first
// violation found: no rows, an empty first row, or a row whose length
// differs from the first.
func (b *Buffer) Validate() error {
	if b == nil || len(b.Rows) == 0 {
		return fmt.Errorf("%w: buffer has no rows", ErrCorruptBuffer)
	}
	width := len(b.Rows[0])
	if width == 0 {
		return fmt.Errorf("%w: buffer has no columns", ErrCorruptBuffer)
	}
	for r, row := range b.Rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d pixels, want %d", ErrCorruptBuffer, r, len(row), width)
		}
	}
	return nil
}

// FromImage converts any decoded image into a fresh buffer of
// non-premultiplied 8-bit RGBA pixels.
func FromImage(img image.Image) *Buffer {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	b := NewBuffer(bounds.Dy(), bounds.Dx())
	for r := 0; r < bounds.Dy(); r++ {
		i := r * nrgba.Stride
		for c := 0; c < bounds.Dx(); c++ {
			b.Rows[r][c] = Pixel{
				R: nrgba.Pix[i],
				G: nrgba.Pix[i+1],
				B: nrgba.Pix[i+2],
				A: nrgba.Pix[i+3],
			}
			i += 4
		}
	}
	return b
}

// Image converts the buffer into an *image.NRGBA anchored at (0,0).
// The buffer must be well-formed.
func (b *Buffer) Image() *image.NRGBA {
	height, width := b.Height(), b.Width()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for r, row := range b.Rows {
		i := r * img.Stride
		for _, p := range row {
			img.Pix[i] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = p.A
			i += 4
		}
	}
	return img
}

package imaging

// Flip reflects the buffer horizontally, or vertically when vertical is true.
//
// The source arrangement is read from a snapshot taken before any pixel is
// overwritten; values are then copied position by position into the live
// buffer, which keeps its row slices.
func Flip(b *Buffer, vertical bool) {
	src := b.Clone()
	height, width := b.Height(), b.Width()

	for r := 0; r < height; r++ {
		dst := b.Rows[r]
		if vertical {
			copy(dst, src.Rows[height-1-r])
			continue
		}
		from := src.Rows[r]
		for c := 0; c < width; c++ {
			dst[c] = from[width-1-c]
		}
	}
}

// Transpose swaps rows and columns. A height x width buffer becomes
// width x height with result[c][r] = original[r][c]. The grid is replaced
// wholesale.
func Transpose(b *Buffer) {
	height, width := b.Height(), b.Width()
	rows := newGrid(width, height)
	for r, row := range b.Rows {
		for c, p := range row {
			rows[c][r] = p
		}
	}
	b.Rows = rows
}

// Rotate turns the buffer 90 degrees to the left, or to the right when right
// is true.
//
// Left rotation is a transpose followed by a vertical flip; right rotation
// is a vertical flip followed by a transpose.
func Rotate(b *Buffer, right bool) {
	if right {
		Flip(b, true)
		Transpose(b)
		return
	}
	Transpose(b)
	Flip(b, true)
}

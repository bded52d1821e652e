package imaging

import "fmt"

// Blur replaces every pixel with the mean of the square window of the given
// radius around it.
//
// The window [r-radius, r+radius] x [c-radius, c+radius] is clipped to the
// buffer, so edge pixels average over fewer neighbors; nothing wraps and no
// synthetic padding is used. All four channels, alpha included, are averaged
// and the means are truncated toward zero. Averages are read from a snapshot
// of the original buffer so blurred values never feed later windows.
//
// Returns an error wrapping ErrInvalidArgument, without touching the buffer,
// if radius is not positive.
func Blur(b *Buffer, radius int) error {
	if radius <= 0 {
		return fmt.Errorf("%w: blur radius must be a positive integer, got %d", ErrInvalidArgument, radius)
	}

	src := b.Clone()
	height, width := b.Height(), b.Width()
	// any radius past the larger side covers the whole buffer; capping it
	// keeps r+radius from overflowing
	radius = min(radius, max(height, width))

	for r := 0; r < height; r++ {
		top := clamp(r-radius, 0, height-1)
		bottom := clamp(r+radius, 0, height-1)
		for c := 0; c < width; c++ {
			left := clamp(c-radius, 0, width-1)
			right := clamp(c+radius, 0, width-1)
			b.Rows[r][c] = src.mean(top, left, bottom+1, right+1)
		}
	}
	return nil
}

// Pixellate gives the buffer a blocky look.
//
// The buffer is partitioned into non-overlapping step x step blocks starting
// at (0,0); blocks on the right and bottom edges are clipped to the buffer.
// Every pixel in a block is set to the block's channel-wise mean, alpha
// included, truncated toward zero. Blocks never overlap, so the work is done
// in place.
//
// Returns an error wrapping ErrInvalidArgument, without touching the buffer,
// if step is not positive.
func Pixellate(b *Buffer, step int) error {
	if step <= 0 {
		return fmt.Errorf("%w: pixellate step must be a positive integer, got %d", ErrInvalidArgument, step)
	}

	height, width := b.Height(), b.Width()
	for top := 0; top < height; top += step {
		bottom := min(top+step, height)
		for left := 0; left < width; left += step {
			right := min(left+step, width)
			avg := b.mean(top, left, bottom, right)
			for r := top; r < bottom; r++ {
				for c := left; c < right; c++ {
					b.Rows[r][c] = avg
				}
			}
		}
	}
	return nil
}

// mean returns the channel-wise truncated average over rows [top,bottom)
// and columns [left,right). The region must be non-empty.
func (b *Buffer) mean(top, left, bottom, right int) Pixel {
	var sr, sg, sb, sa, n int
	for r := top; r < bottom; r++ {
		row := b.Rows[r]
		for c := left; c < right; c++ {
			p := row[c]
			sr += int(p.R)
			sg += int(p.G)
			sb += int(p.B)
			sa += int(p.A)
			n++
		}
	}
	return Pixel{
		R: uint8(sr / n),
		G: uint8(sg / n),
		B: uint8(sb / n),
		A: uint8(sa / n),
	}
}

// clamp constrains an integer value to the range [lo, hi].
// Used for window clipping in neighborhood operations.
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

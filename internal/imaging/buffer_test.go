package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// px is shorthand for building pixels in test tables.
func px(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// bufferOf builds a buffer from literal rows. Rows are copied so tests can
// keep the literal as the expected value.
func bufferOf(rows ...[]Pixel) *Buffer {
	return (&Buffer{Rows: rows}).Clone()
}

// createPatternBuffer returns a height x width buffer where every pixel is
// distinct, so any misplaced pixel shows up in a comparison.
func createPatternBuffer(height, width int) *Buffer {
	b := NewBuffer(height, width)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			b.Rows[r][c] = px(uint8(r*16+c), uint8(c*7+1), uint8(r*3+2), uint8(255-r-c))
		}
	}
	return b
}

// createUniformBuffer returns a height x width buffer filled with p.
func createUniformBuffer(height, width int, p Pixel) *Buffer {
	b := NewBuffer(height, width)
	for _, row := range b.Rows {
		for c := range row {
			row[c] = p
		}
	}
	return b
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(3, 5)
	if b.Height() != 3 || b.Width() != 5 {
		t.Fatalf("size: got %dx%d, want 3x5", b.Height(), b.Width())
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	b := createPatternBuffer(4, 4)
	snap := b.Clone()

	if diff := cmp.Diff(b, snap); diff != "" {
		t.Fatalf("clone differs from original (-orig +clone):\n%s", diff)
	}

	b.Rows[1][2] = px(1, 2, 3, 4)
	b.Rows[0] = append(b.Rows[0][:0], px(9, 9, 9, 9))

	if snap.Rows[1][2] == px(1, 2, 3, 4) {
		t.Error("writing to the original changed the snapshot")
	}
	if snap.Width() != 4 || len(snap.Rows[0]) != 4 {
		t.Error("reslicing the original changed the snapshot")
	}
}

func TestBuffer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		buf     *Buffer
		wantErr bool
	}{
		{"1x1", NewBuffer(1, 1), false},
		{"rectangular", NewBuffer(2, 7), false},
		{"nil buffer", nil, true},
		{"no rows", &Buffer{}, true},
		{"empty first row", &Buffer{Rows: [][]Pixel{{}}}, true},
		{"ragged", &Buffer{Rows: [][]Pixel{make([]Pixel, 3), make([]Pixel, 2)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buf.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrCorruptBuffer) {
					t.Errorf("Validate: got %v, want ErrCorruptBuffer", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate: unexpected error %v", err)
			}
		})
	}
}

func TestFromImage_RoundTrip(t *testing.T) {
	b := createPatternBuffer(3, 5)
	got := FromImage(b.Image())

	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromImage_Orientation(t *testing.T) {
	// 2 wide, 1 tall: red at x=0, blue at x=1
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 0, 255, 255})

	b := FromImage(img)
	if b.Height() != 1 || b.Width() != 2 {
		t.Fatalf("size: got %dx%d, want 1x2", b.Height(), b.Width())
	}
	want := bufferOf([]Pixel{px(255, 0, 0, 255), px(0, 0, 255, 255)})
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestFromImage_NonZeroOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.Set(10, 20, color.NRGBA{1, 2, 3, 255})
	img.Set(12, 21, color.NRGBA{4, 5, 6, 7})

	b := FromImage(img)
	if b.Height() != 2 || b.Width() != 3 {
		t.Fatalf("size: got %dx%d, want 2x3", b.Height(), b.Width())
	}
	if b.Rows[0][0] != px(1, 2, 3, 255) {
		t.Errorf("top-left: got %v", b.Rows[0][0])
	}
	if b.Rows[1][2] != px(4, 5, 6, 7) {
		t.Errorf("bottom-right: got %v", b.Rows[1][2])
	}
}

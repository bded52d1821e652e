package imaging

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCrop_Regions(t *testing.T) {
	tests := []struct {
		region       string
		top, left    int
		wantH, wantW int
	}{
		{"top-left", 0, 0, 2, 3},
		{"top-right", 0, 3, 2, 3},
		{"bottom-left", 2, 0, 3, 3},
		{"bottom-right", 2, 3, 3, 3},
		{"top-half", 0, 0, 2, 6},
		{"bottom-half", 2, 0, 3, 6},
		{"left-half", 0, 0, 5, 3},
		{"right-half", 0, 3, 5, 3},
		{"center", 1, 1, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			b := createPatternBuffer(5, 6)
			orig := b.Clone()

			if err := Crop(b, tt.region); err != nil {
				t.Fatalf("Crop failed: %v", err)
			}
			if b.Height() != tt.wantH || b.Width() != tt.wantW {
				t.Fatalf("size: got %dx%d, want %dx%d", b.Height(), b.Width(), tt.wantH, tt.wantW)
			}

			want := NewBuffer(tt.wantH, tt.wantW)
			for r := range want.Rows {
				copy(want.Rows[r], orig.Rows[tt.top+r][tt.left:tt.left+tt.wantW])
			}
			if diff := cmp.Diff(want, b); diff != "" {
				t.Errorf("crop mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCrop_Errors(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		region        string
	}{
		{"unknown region", 4, 4, "middle"},
		{"empty quadrant", 1, 1, "top-left"},
		{"empty half", 1, 5, "top-half"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := createPatternBuffer(tt.height, tt.width)
			want := b.Clone()

			if err := Crop(b, tt.region); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Crop: got %v, want ErrInvalidArgument", err)
			}
			if diff := cmp.Diff(want, b); diff != "" {
				t.Errorf("buffer changed on error:\n%s", diff)
			}
		})
	}
}

func TestCrop_EveryRegionIsKnown(t *testing.T) {
	for _, region := range Regions {
		if err := Crop(createPatternBuffer(8, 8), region); err != nil {
			t.Errorf("%s: %v", region, err)
		}
	}
}

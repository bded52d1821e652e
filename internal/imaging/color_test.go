package imaging

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPixel_String(t *testing.T) {
	if got := px(255, 0, 10, 128).String(); got != "(255,0,10,128)" {
		t.Errorf("String: got %s", got)
	}
}

func TestPixel_Hex(t *testing.T) {
	tests := []struct {
		name string
		p    Pixel
		want string
	}{
		{"pure red", px(255, 0, 0, 255), "#ff0000"},
		{"pure green", px(0, 255, 0, 255), "#00ff00"},
		{"pure blue", px(0, 0, 255, 255), "#0000ff"},
		{"white", px(255, 255, 255, 255), "#ffffff"},
		{"black", px(0, 0, 0, 255), "#000000"},
		{"gray", px(128, 128, 128, 255), "#808080"},
		{"alpha ignored", px(255, 128, 64, 0), "#ff8040"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Hex(); got != tt.want {
				t.Errorf("Hex: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPixel_HSL(t *testing.T) {
	tests := []struct {
		name string
		p    Pixel
		want HSLColor
	}{
		{"red", px(255, 0, 0, 255), HSLColor{H: 0, S: 100, L: 50}},
		{"green", px(0, 255, 0, 255), HSLColor{H: 120, S: 100, L: 50}},
		{"blue", px(0, 0, 255, 255), HSLColor{H: 240, S: 100, L: 50}},
		{"black", px(0, 0, 0, 255), HSLColor{H: 0, S: 0, L: 0}},
		{"white", px(255, 255, 255, 255), HSLColor{H: 0, S: 0, L: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.HSL(); got != tt.want {
				t.Errorf("HSL: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToChannel(t *testing.T) {
	tests := []struct {
		in         float64
		want       uint8
		brightness uint8
	}{
		{-3.5, 0, 0},
		{0, 0, 0},
		{0.99, 0, 0},
		{18.000000000000004, 18, 18},
		// representation error below a whole brightness is absorbed only
		// on the brightness path
		{17.999999999999996, 17, 18},
		{99.99999999999999, 99, 100},
		{10.8, 10, 10},
		{254.9, 254, 254},
		{255, 255, 255},
		{300, 255, 255},
	}

	for _, tt := range tests {
		if got := toChannel(tt.in); got != tt.want {
			t.Errorf("toChannel(%v): got %d, want %d", tt.in, got, tt.want)
		}
		if got := brightnessChannel(tt.in); got != tt.brightness {
			t.Errorf("brightnessChannel(%v): got %d, want %d", tt.in, got, tt.brightness)
		}
	}
}

func TestSampleColor(t *testing.T) {
	b := bufferOf(
		[]Pixel{px(255, 0, 0, 255), px(0, 255, 0, 128)},
		[]Pixel{px(0, 0, 255, 0), px(255, 255, 255, 255)},
	)

	got, err := SampleColor(b, 0, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	want := &ColorSample{
		Row:  0,
		Col:  1,
		RGBA: px(0, 255, 0, 128),
		Hex:  "#00ff00",
		HSL:  HSLColor{H: 120, S: 100, L: 50},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sample mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	b := createPatternBuffer(2, 3)
	tests := []struct {
		row, col int
	}{
		{-1, 0},
		{0, -1},
		{2, 0},
		{0, 3},
	}

	for _, tt := range tests {
		if _, err := SampleColor(b, tt.row, tt.col); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("(%d,%d): got %v, want ErrInvalidArgument", tt.row, tt.col, err)
		}
	}
}

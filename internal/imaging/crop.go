package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Regions lists the named areas Crop accepts.
var Regions = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half",
	"center",
}

// Crop keeps only the named region of the buffer. The halves and quadrants
// split at width/2 and height/2; "center" keeps the middle 50% on each axis.
//
// Returns an error wrapping ErrInvalidArgument for an unknown region, or
// when the region of a very small buffer would be empty. The buffer is left
// untouched on error.
func Crop(b *Buffer, region string) error {
	rect, err := regionRect(region, b.Width(), b.Height())
	if err != nil {
		return err
	}
	if rect.Empty() {
		return fmt.Errorf("%w: region %s of a %dx%d image is empty",
			ErrInvalidArgument, region, b.Width(), b.Height())
	}

	b.Rows = FromImage(imaging.Crop(b.Image(), rect)).Rows
	return nil
}

func regionRect(region string, w, h int) (image.Rectangle, error) {
	midX, midY := w/2, h/2

	var x1, y1, x2, y2 int
	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW, qH := w/4, h/4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return image.Rectangle{}, fmt.Errorf("%w: unknown region %q", ErrInvalidArgument, region)
	}
	return image.Rect(x1, y1, x2, y2), nil
}

package plugin

import (
	"io"
	"strings"

	"github.com/ironsheep/pictool/internal/imaging"
)

// Default returns a registry holding every built-in transform.
func Default() *Registry {
	r := NewRegistry()
	for _, spec := range builtins() {
		r.MustRegister(spec)
	}
	return r
}

func builtins() []Spec {
	return []Spec{
		{
			Name:        "display",
			Description: "Print every pixel's channel values. Never modifies the image.",
			Apply: func(b *imaging.Buffer, _ Options, out io.Writer) (bool, error) {
				return false, imaging.Display(out, b)
			},
		},
		{
			Name:        "dered",
			Description: "Remove the red channel from every pixel.",
			Apply: func(b *imaging.Buffer, _ Options, _ io.Writer) (bool, error) {
				imaging.Dered(b)
				return true, nil
			},
		},
		{
			Name:        "mono",
			Description: "Convert to grayscale, or sepia tone.",
			Params: []Param{
				{Name: "sepia", Kind: Bool, Default: false, Description: "use sepia tone instead of grayscale"},
			},
			Apply: func(b *imaging.Buffer, opts Options, _ io.Writer) (bool, error) {
				sepia, err := opts.Bool("sepia")
				if err != nil {
					return false, err
				}
				imaging.Mono(b, sepia)
				return true, nil
			},
		},
		{
			Name:        "flip",
			Description: "Reflect the image horizontally, or vertically.",
			Params: []Param{
				{Name: "vertical", Kind: Bool, Default: false, Description: "reflect top to bottom instead of left to right"},
			},
			Apply: func(b *imaging.Buffer, opts Options, _ io.Writer) (bool, error) {
				vertical, err := opts.Bool("vertical")
				if err != nil {
					return false, err
				}
				imaging.Flip(b, vertical)
				return true, nil
			},
		},
		{
			Name:        "transpose",
			Description: "Swap rows and columns.",
			Apply: func(b *imaging.Buffer, _ Options, _ io.Writer) (bool, error) {
				imaging.Transpose(b)
				return true, nil
			},
		},
		{
			Name:        "rotate",
			Description: "Rotate 90 degrees left, or right.",
			Params: []Param{
				{Name: "right", Kind: Bool, Default: false, Description: "rotate clockwise instead of counter-clockwise"},
			},
			Apply: func(b *imaging.Buffer, opts Options, _ io.Writer) (bool, error) {
				right, err := opts.Bool("right")
				if err != nil {
					return false, err
				}
				imaging.Rotate(b, right)
				return true, nil
			},
		},
		{
			Name:        "vignette",
			Description: "Darken the corners like an antique lens.",
			Apply: func(b *imaging.Buffer, _ Options, _ io.Writer) (bool, error) {
				imaging.Vignette(b)
				return true, nil
			},
		},
		{
			Name:        "blur",
			Description: "Box blur every pixel over a square window.",
			Params: []Param{
				{Name: "radius", Kind: Int, Default: 5, Description: "window radius in pixels (> 0)"},
			},
			Apply: func(b *imaging.Buffer, opts Options, _ io.Writer) (bool, error) {
				radius, err := opts.Int("radius")
				if err != nil {
					return false, err
				}
				if err := imaging.Blur(b, radius); err != nil {
					return false, err
				}
				return true, nil
			},
		},
		{
			Name:        "pixellate",
			Description: "Average the image over non-overlapping square blocks.",
			Params: []Param{
				{Name: "step", Kind: Int, Default: 10, Description: "block size in pixels (> 0)"},
			},
			Apply: func(b *imaging.Buffer, opts Options, _ io.Writer) (bool, error) {
				step, err := opts.Int("step")
				if err != nil {
					return false, err
				}
				if err := imaging.Pixellate(b, step); err != nil {
					return false, err
				}
				return true, nil
			},
		},
		{
			Name:        "scale",
			Description: "Resize the image by a factor with bilinear resampling.",
			Params: []Param{
				{Name: "factor", Kind: Float, Default: 0.5, Description: "size multiplier (> 0)"},
			},
			Apply: func(b *imaging.Buffer, opts Options, _ io.Writer) (bool, error) {
				factor, err := opts.Float("factor")
				if err != nil {
					return false, err
				}
				if err := imaging.Scale(b, factor); err != nil {
					return false, err
				}
				return true, nil
			},
		},
		{
			Name:        "crop",
			Description: "Keep only a named region of the image.",
			Params: []Param{
				{Name: "region", Kind: Text, Default: "center", Description: "one of " + strings.Join(imaging.Regions, ", ")},
			},
			Apply: func(b *imaging.Buffer, opts Options, _ io.Writer) (bool, error) {
				region, err := opts.Text("region")
				if err != nil {
					return false, err
				}
				if err := imaging.Crop(b, region); err != nil {
					return false, err
				}
				return true, nil
			},
		},
	}
}

// Package imaging holds the pixel buffer model and the transforms pictool
// applies to it.
//
// An image is loaded into a Buffer, a rectangular grid of 8-bit RGBA pixels
// addressed as Rows[row][col] with (0,0) at the top-left corner. Exactly one
// transform runs against a freshly loaded buffer per invocation, after which
// the buffer is either discarded or validated and written back as PNG.
//
// # Transforms
//
// Point transforms touch each pixel independently:
//   - Mono: grayscale or sepia from 0.3*R + 0.6*G + 0.1*B
//   - Dered: zero the red channel
//   - Vignette: darken by 1 - (d/H)^2 toward the corners
//
// Geometry transforms rearrange or reshape the grid:
//   - Flip: mirror horizontally or vertically
//   - Transpose: swap rows and columns
//   - Rotate: 90 degrees left or right
//   - Scale: bilinear resampling by a factor
//   - Crop: keep a named quadrant, half or the center
//
// Neighborhood transforms aggregate over a window:
//   - Blur: clipped box mean of a given radius
//   - Pixellate: block means over step x step tiles
//
// Display writes a textual dump of the pixels and changes nothing.
//
// # Snapshots
//
// Transforms that would otherwise read values they have already overwritten
// (Flip, Blur) take a Clone of the buffer first and read only from it. A
// clone is a deep copy; it never shares row storage with the original.
// Transpose, Rotate, Scale and Crop change the buffer's shape and replace
// Rows wholesale.
//
// # Rounding
//
// Averages and brightness values are truncated toward zero, never rounded.
// Channel results are clamped to 0-255.
//
// # Error Handling
//
// Failures wrap one of the sentinel errors ErrInvalidArgument,
// ErrCorruptBuffer or ErrIO, so callers can classify them with errors.Is.
// Parameters are checked before any pixel is touched.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Buffers are not; each one
// belongs to a single invocation.
package imaging

// Package imaging handles everything brightquad does with image files and
// pixels: decoding, grayscale conversion, saving, and drawing the polygon.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Matrices returned by GrayMatrix are indexed (row, col), so matrix element
// (r, c) is pixel (X: c, Y: r).
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Drawing functions never
// modify their input image; they draw on a copy.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Patch regions outside image bounds
//   - Unparseable colours
//   - File I/O errors during loading or saving
package imaging

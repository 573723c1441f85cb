// Package patch implements the brightness analysis behind brightquad.
//
// An image is split into non-overlapping square patches (a Grid), each patch is
// reduced to its mean intensity, the K brightest patches are selected, and their
// grid positions are mapped back to pixel coordinates. The resulting vertices
// are measured with the shoelace formula.
//
// # Coordinate System
//
// Pixel coordinates use image.Point: X is the column, Y is the row, and (0,0)
// is the top-left pixel. Grid positions use Index{Row, Col}. A matrix element
// at (row, col) corresponds to image.Point{X: col, Y: row}.
//
// # Error Handling
//
// Every error returned by this package wraps either ErrInvalidArgument or
// ErrShapeMismatch, so callers can classify failures with errors.Is.
//
// All functions are pure: they never mutate their inputs and keep no state.
package patch

package patch

import "image"

// DefaultCenterOffset is the interior reference pixel used for every patch
// size. It is the exact center of a 5x5 patch and an approximation for any
// other size; use CentroidOffset for the true center.
const DefaultCenterOffset = 2

// CentroidOffset returns the offset of the central pixel of a size x size
// patch.
func CentroidOffset(size int) int {
	return size / 2
}

// Centers maps grid positions to pixel coordinates using DefaultCenterOffset.
// Index (i, j) becomes the pixel at row i*size+2, column j*size+2.
func Centers(idx []Index, size int) []image.Point {
	return CentersWithOffset(idx, size, DefaultCenterOffset)
}

// CentersWithOffset maps grid positions to pixel coordinates, offsetting the
// top-left corner of each patch by offset pixels along both axes.
func CentersWithOffset(idx []Index, size, offset int) []image.Point {
	out := make([]image.Point, len(idx))
	for n, ix := range idx {
		out[n] = image.Point{
			X: ix.Col*size + offset,
			Y: ix.Row*size + offset,
		}
	}
	return out
}

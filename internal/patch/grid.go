package patch

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Grid is a 4D array of shape (Rows, Cols, Size, Size) holding the square
// patches of an image. Patches are stored row-major, each one as a contiguous
// run of Size*Size values.
type Grid struct {
	Rows int
	Cols int
	Size int

	data []float64
}

// NewGrid wraps data as a grid of rows x cols patches of size x size values.
// The slice is used directly, not copied.
func NewGrid(rows, cols, size int, data []float64) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: patch size must be positive, got %d", ErrInvalidArgument, size)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid must have at least one patch, got %dx%d", ErrShapeMismatch, rows, cols)
	}
	if want := rows * cols * size * size; len(data) != want {
		return nil, fmt.Errorf("%w: grid %dx%dx%dx%d needs %d values, got %d",
			ErrShapeMismatch, rows, cols, size, size, want, len(data))
	}
	return &Grid{Rows: rows, Cols: cols, Size: size, data: data}, nil
}

// GridFromPatches builds a grid from a nested [row][col][y][x] array.
// Ragged or non-square input is rejected.
func GridFromPatches(patches [][][][]float64) (*Grid, error) {
	if len(patches) == 0 || len(patches[0]) == 0 || len(patches[0][0]) == 0 {
		return nil, fmt.Errorf("%w: empty patch array", ErrShapeMismatch)
	}
	rows, cols, size := len(patches), len(patches[0]), len(patches[0][0])

	data := make([]float64, 0, rows*cols*size*size)
	for r, row := range patches {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d patches, want %d", ErrShapeMismatch, r, len(row), cols)
		}
		for c, p := range row {
			if len(p) != size {
				return nil, fmt.Errorf("%w: patch (%d,%d) has %d rows, want %d", ErrShapeMismatch, r, c, len(p), size)
			}
			for y, line := range p {
				if len(line) != size {
					return nil, fmt.Errorf("%w: patch (%d,%d) row %d has %d values, want %d (patches must be square)",
						ErrShapeMismatch, r, c, y, len(line), size)
				}
				data = append(data, line...)
			}
		}
	}
	return NewGrid(rows, cols, size, data)
}

// Tile splits src into non-overlapping size x size patches with a step equal
// to size. Trailing rows and columns that do not fill a whole patch are
// dropped.
func Tile(src mat.Matrix, size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: patch size must be positive, got %d", ErrInvalidArgument, size)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source matrix", ErrShapeMismatch)
	}
	h, w := src.Dims()
	rows, cols := h/size, w/size
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: image %dx%d is smaller than patch size %d", ErrInvalidArgument, w, h, size)
	}

	data := make([]float64, rows*cols*size*size)
	i := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					data[i] = src.At(r*size+y, c*size+x)
					i++
				}
			}
		}
	}
	return &Grid{Rows: rows, Cols: cols, Size: size, data: data}, nil
}

// Shape returns the grid dimensions as (rows, cols, patch height, patch width).
func (g *Grid) Shape() [4]int {
	return [4]int{g.Rows, g.Cols, g.Size, g.Size}
}

// Patch returns the values of patch (row, col) in row-major order.
// The returned slice aliases the grid storage.
func (g *Grid) Patch(row, col int) []float64 {
	n := g.Size * g.Size
	start := (row*g.Cols + col) * n
	return g.data[start : start+n : start+n]
}

package patch

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Brightness reduces every patch of g to its mean value. The result has one
// entry per patch: shape (g.Rows, g.Cols).
//
// Non-finite pixel values propagate into the patch mean unchanged.
func Brightness(g *Grid) (*mat.Dense, error) {
	if g == nil || g.Rows < 1 || g.Cols < 1 || g.Size < 1 {
		return nil, fmt.Errorf("%w: empty patch grid", ErrShapeMismatch)
	}

	n := float64(g.Size * g.Size)
	out := mat.NewDense(g.Rows, g.Cols, nil)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out.Set(r, c, floats.Sum(g.Patch(r, c))/n)
		}
	}
	return out, nil
}

package patch

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Index is a patch position in the grid.
type Index struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// TopK returns the grid positions of the k brightest entries of m.
//
// Selection is partition-based: the k returned positions hold the k largest
// values, but they come back in no particular order, and when several entries
// tie at the selection boundary which of them is kept is decided by the
// partitioning, not by position. Both are deterministic for a given input.
// NaN entries rank below every number.
//
// k must be between 1 and the number of entries in m.
func TopK(m mat.Matrix, k int) ([]Index, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil brightness map", ErrShapeMismatch)
	}
	rows, cols := m.Dims()
	n := rows * cols
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: cannot select %d patches from %d available", ErrInvalidArgument, k, n)
	}

	vals := make([]float64, n)
	order := make([]int, n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			vals[i] = m.At(r, c)
			order[i] = i
		}
	}

	selectLargest(vals, order, k)

	out := make([]Index, k)
	for i, flat := range order[:k] {
		out[i] = Index{Row: flat / cols, Col: flat % cols}
	}
	return out, nil
}

// selectLargest rearranges order so that order[:k] refers to the k largest
// values. It runs quickselect with a median-of-three pivot and a three-way
// partition, so runs of equal values are settled in a single pass.
func selectLargest(vals []float64, order []int, k int) {
	target := k - 1
	lo, hi := 0, len(order)-1
	for lo < hi {
		eqLo, eqHi := partition(vals, order, lo, hi)
		switch {
		case target < eqLo:
			hi = eqLo - 1
		case target > eqHi:
			lo = eqHi + 1
		default:
			return
		}
	}
}

// partition splits order[lo:hi+1] around a median-of-three pivot into
// entries greater than the pivot, entries equal to it and the rest. It
// returns the inclusive range [eqLo, eqHi] holding the pivot-equal entries.
func partition(vals []float64, order []int, lo, hi int) (eqLo, eqHi int) {
	mid := lo + (hi-lo)/2
	// Sort lo, mid, hi so the median ends up at hi.
	if greater(vals[order[mid]], vals[order[lo]]) {
		order[lo], order[mid] = order[mid], order[lo]
	}
	if greater(vals[order[hi]], vals[order[lo]]) {
		order[lo], order[hi] = order[hi], order[lo]
	}
	if greater(vals[order[mid]], vals[order[hi]]) {
		order[mid], order[hi] = order[hi], order[mid]
	}

	pivot := vals[order[hi]]
	lt, i, gt := lo, lo, hi
	for i <= gt {
		v := vals[order[i]]
		switch {
		case greater(v, pivot):
			order[lt], order[i] = order[i], order[lt]
			lt++
			i++
		case greater(pivot, v):
			order[i], order[gt] = order[gt], order[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

// greater orders values descending with NaN last.
func greater(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	return a > b || math.IsNaN(b)
}

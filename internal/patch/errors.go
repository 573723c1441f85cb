package patch

import "errors"

var (
	// ErrInvalidArgument reports an out-of-range parameter, such as a
	// non-positive patch size or a top-K count larger than the grid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShapeMismatch reports input data whose dimensions do not match what
	// the operation expects.
	ErrShapeMismatch = errors.New("shape mismatch")
)

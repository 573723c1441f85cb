package patch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		name    string
		patches [][][][]float64
		want    [][]float64
	}{
		{
			"single ramp patch",
			[][][][]float64{{rampPatch()}},
			[][]float64{{3.0}},
		},
		{
			"2x2 grid",
			[][][][]float64{
				{rampPatch(), rampPatch()},
				{uniformPatch(5, 1), uniformPatch(5, 0)},
			},
			[][]float64{{3.0, 3.0}, {1.0, 0.0}},
		},
		{
			"1x1 patches",
			[][][][]float64{{{{4}}, {{-2}}}},
			[][]float64{{4, -2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := GridFromPatches(tt.patches)
			require.NoError(t, err)

			b, err := Brightness(g)
			require.NoError(t, err)

			rows, cols := b.Dims()
			assert.Equal(t, g.Rows, rows)
			assert.Equal(t, g.Cols, cols)
			for r := range tt.want {
				for c := range tt.want[r] {
					assert.InDelta(t, tt.want[r][c], b.At(r, c), 1e-12, "entry (%d,%d)", r, c)
				}
			}
		})
	}
}

func TestBrightness_PropagatesNonFinite(t *testing.T) {
	p := uniformPatch(2, 1)
	p[1][1] = math.NaN()
	q := uniformPatch(2, 1)
	q[0][0] = math.Inf(1)

	g, err := GridFromPatches([][][][]float64{{p, q}})
	require.NoError(t, err)

	b, err := Brightness(g)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(b.At(0, 0)))
	assert.True(t, math.IsInf(b.At(0, 1), 1))
}

func TestBrightness_EmptyGrid(t *testing.T) {
	_, err := Brightness(nil)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Brightness(&Grid{})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

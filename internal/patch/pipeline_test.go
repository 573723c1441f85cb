package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func denseFromRows(rows [][]float64) *mat.Dense {
	m := mat.NewDense(len(rows), len(rows[0]), nil)
	for r, row := range rows {
		m.SetRow(r, row)
	}
	return m
}

func TestBrightestCenters(t *testing.T) {
	tests := []struct {
		name  string
		image [][]float64
		size  int
		k     int
		want  []float64
	}{
		{
			"outliers in lower patches",
			[][]float64{
				{1, 2, 3, 4, 5, 0, 0, 0, 0, 0},
				{1, 2, 3, 4, 5, 0, 0, 0, 0, 0},
				{1, 2, 3, 4, 5, 0, 0, 0, 0, 0},
				{1, 2, 3, 4, 5, 0, 0, 0, 0, 0},
				{1, 2, 3, 4, 5, 0, 0, 0, 0, 0},
				{9, 10, 11, 12, 13, 4, 5, 6, 7, 8},
				{9, 10, 11, 12, 13, 4, 5, 6, 7, 8},
				{9, 10, 20, 12, 13, 4, 5, 16, 7, 8},
				{9, 10, 11, 12, 13, 4, 5, 6, 7, 8},
				{9, 10, 11, 12, 13, 4, 5, 6, 7, 8},
			},
			5, 2,
			[]float64{20, 16},
		},
		{
			"trailing columns ignored",
			[][]float64{
				{1, 2, 3, 4, 5, 200, 200, 200, 200, 200, 1, 8, 7},
				{1, 2, 3, 4, 5, 200, 200, 200, 200, 200, 1, 8, 7},
				{1, 2, 3, 4, 5, 200, 200, 200, 200, 200, 1, 8, 7},
				{1, 2, 3, 4, 5, 200, 200, 200, 200, 200, 1, 8, 7},
				{1, 2, 3, 4, 5, 200, 200, 200, 200, 200, 1, 8, 7},
				{9, 10, 11, 12, 13, 4, 5, 6, 7, 8, 1, 12, 13},
				{9, 10, 11, 12, 13, 4, 5, 6, 7, 8, 1, 12, 13},
				{9, 10, 20, 12, 13, 4, 5, 16, 7, 8, 1, 12, 13},
				{9, 10, 11, 12, 13, 4, 5, 6, 7, 8, 1, 12, 13},
				{9, 10, 11, 12, 13, 4, 5, 6, 7, 8, 1, 12, 13},
			},
			5, 2,
			[]float64{200, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := denseFromRows(tt.image)

			g, err := Tile(src, tt.size)
			require.NoError(t, err)
			b, err := Brightness(g)
			require.NoError(t, err)
			idx, err := TopK(b, tt.k)
			require.NoError(t, err)

			var got []float64
			for _, p := range Centers(idx, tt.size) {
				got = append(got, src.At(p.Y, p.X))
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

package patch

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// SignedArea computes the shoelace area of the closed polygon pts, in square
// pixels. The sign follows the traversal direction, so reversing the vertex
// order negates the result. Collinear vertices give 0.
//
// The polygon must have at least 3 vertices. Self-intersecting orderings are
// measured as given.
func SignedArea(pts []image.Point) (float64, error) {
	if len(pts) < 3 {
		return 0, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrInvalidArgument, len(pts))
	}

	var sum1, sum2 int
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum1 += p.X * q.Y
		sum2 += p.Y * q.X
	}
	return float64(sum1-sum2) / 2, nil
}

// PolygonArea is the unsigned shoelace area of pts.
func PolygonArea(pts []image.Point) (float64, error) {
	a, err := SignedArea(pts)
	if err != nil {
		return 0, err
	}
	return math.Abs(a), nil
}

// QuadrilateralArea returns the area enclosed by the four vertices of q taken
// in order.
func QuadrilateralArea(q [4]image.Point) float64 {
	a, _ := PolygonArea(q[:])
	return a
}

// Perimeter returns the length of the closed polygon through pts.
func Perimeter(pts []image.Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	var total float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		total += math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
	}
	return total
}

// OrderRowMajor returns a copy of pts sorted by row, then column.
func OrderRowMajor(pts []image.Point) []image.Point {
	out := append([]image.Point(nil), pts...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// OrderPolar returns a copy of pts sorted by angle around their centroid,
// clockwise on screen starting from the negative X axis. For a convex set
// this traces the hull.
func OrderPolar(pts []image.Point) []image.Point {
	out := append([]image.Point(nil), pts...)
	if len(out) == 0 {
		return out
	}

	var cx, cy float64
	for _, p := range out {
		cx += float64(p.X)
		cy += float64(p.Y)
	}
	cx /= float64(len(out))
	cy /= float64(len(out))

	angle := func(p image.Point) float64 {
		return math.Atan2(float64(p.Y)-cy, float64(p.X)-cx)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := angle(out[i]), angle(out[j])
		if ai != aj {
			return ai < aj
		}
		// Same ray: nearer vertex first.
		return math.Hypot(float64(out[i].X)-cx, float64(out[i].Y)-cy) <
			math.Hypot(float64(out[j].X)-cx, float64(out[j].Y)-cy)
	})
	return out
}

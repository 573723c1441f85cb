package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// RowMajorQuadEdges joins four vertices sorted by row then column into an
// outline: top pair, left pair, right pair, bottom pair.
var RowMajorQuadEdges = [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}

// LoopEdges joins n vertices in order and closes the loop back to the first.
func LoopEdges(n int) [][2]int {
	if n < 2 {
		return nil
	}
	edges := make([][2]int, n)
	for i := range edges {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	return edges
}

// ParseColor parses a "#RRGGBB" (or "#RGB") string into an opaque colour.
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// DrawEdges returns a copy of img with a line drawn for every edge. Each edge
// holds two indices into pts. Pixels falling outside the image are skipped.
func DrawEdges(img image.Image, pts []image.Point, edges [][2]int, c color.Color, thickness int) (*image.NRGBA, error) {
	for _, e := range edges {
		if e[0] < 0 || e[0] >= len(pts) || e[1] < 0 || e[1] >= len(pts) {
			return nil, fmt.Errorf("edge %v references a vertex outside 0..%d", e, len(pts)-1)
		}
	}
	if thickness < 1 {
		thickness = 1
	}

	// Clone re-bases the copy at (0,0).
	origin := img.Bounds().Min
	dst := imaging.Clone(img)
	for _, e := range edges {
		drawLine(dst, pts[e[0]].Sub(origin), pts[e[1]].Sub(origin), c, thickness)
	}
	return dst, nil
}

// drawLine rasterises the segment a-b with Bresenham's algorithm, stamping a
// square brush of side thickness at every step.
func drawLine(dst *image.NRGBA, a, b image.Point, c color.Color, thickness int) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	lo := -(thickness - 1) / 2
	hi := thickness / 2

	x, y := a.X, a.Y
	e := dx + dy
	for {
		for oy := lo; oy <= hi; oy++ {
			for ox := lo; ox <= hi; ox++ {
				// NRGBA.Set ignores points outside the bounds.
				dst.Set(x+ox, y+oy, c)
			}
		}
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// EncodedImage is an image encoded as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as a base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

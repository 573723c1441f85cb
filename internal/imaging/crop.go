package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropPatch extracts the size x size patch at grid position (row, col) and
// encodes it as PNG. A scale above 1 enlarges the patch with nearest-neighbour
// sampling so individual pixels stay visible.
func CropPatch(img image.Image, row, col, size int, scale float64) (*EncodedImage, error) {
	if size < 1 {
		return nil, fmt.Errorf("patch size must be positive, got %d", size)
	}
	if row < 0 || col < 0 {
		return nil, fmt.Errorf("patch position (%d,%d) is negative", row, col)
	}

	bounds := img.Bounds()
	x1 := bounds.Min.X + col*size
	y1 := bounds.Min.Y + row*size
	x2, y2 := x1+size, y1+size
	if x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("patch (%d,%d) region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			row, col, x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if scale != 1.0 && scale > 0 {
		side := int(float64(size) * scale)
		if side < 1 {
			side = 1
		}
		cropped = imaging.Resize(cropped, side, side, imaging.NearestNeighbor)
	}

	return EncodePNG(cropped)
}

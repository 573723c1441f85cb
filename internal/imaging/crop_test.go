package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func decodeResult(t *testing.T, r *EncodedImage) image.Image {
	t.Helper()
	img, err := png.Decode(base64.NewDecoder(base64.StdEncoding, strings.NewReader(r.ImageBase64)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

func TestCropPatch(t *testing.T) {
	img := createInMemoryImage(20, 10, color.Black)
	// Mark the top-left pixel of patch (1, 2) with size 5.
	img.Set(10, 5, color.White)

	result, err := CropPatch(img, 1, 2, 5, 1.0)
	if err != nil {
		t.Fatalf("CropPatch failed: %v", err)
	}
	if result.Width != 5 || result.Height != 5 {
		t.Errorf("dimensions: got %dx%d, want 5x5", result.Width, result.Height)
	}

	out := decodeResult(t, result)
	if !isColor(out, 0, 0, color.NRGBA{255, 255, 255, 255}) {
		t.Error("patch origin should be the marked pixel")
	}
	if !isColor(out, 1, 0, color.NRGBA{0, 0, 0, 255}) {
		t.Error("neighbour pixel should be black")
	}
}

func TestCropPatch_Scale(t *testing.T) {
	img := createInMemoryImage(10, 10, color.Black)
	img.Set(0, 0, color.White)

	result, err := CropPatch(img, 0, 0, 5, 4.0)
	if err != nil {
		t.Fatalf("CropPatch failed: %v", err)
	}
	if result.Width != 20 || result.Height != 20 {
		t.Fatalf("scaled dimensions: got %dx%d, want 20x20", result.Width, result.Height)
	}

	out := decodeResult(t, result)
	// Nearest-neighbour keeps the marked pixel as a solid 4x4 block.
	white := color.NRGBA{255, 255, 255, 255}
	if !isColor(out, 0, 0, white) || !isColor(out, 3, 3, white) {
		t.Error("enlarged pixel should cover a 4x4 block")
	}
	if isColor(out, 4, 4, white) {
		t.Error("block should end at 4 pixels")
	}
}

func TestCropPatch_Errors(t *testing.T) {
	img := createInMemoryImage(10, 10, color.Black)

	tests := []struct {
		name          string
		row, col, size int
	}{
		{"zero size", 0, 0, 0},
		{"negative row", -1, 0, 5},
		{"negative col", 0, -1, 5},
		{"beyond right edge", 0, 2, 5},
		{"beyond bottom edge", 2, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropPatch(img, tt.row, tt.col, tt.size, 1.0); err == nil {
				t.Error("CropPatch should fail")
			}
		})
	}
}

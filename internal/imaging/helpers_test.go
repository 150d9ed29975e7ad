package imaging

import (
	"image"
	"image/color"

	"github.com/smaxiso/poster-maker/internal/layout"
)

// createInMemoryImage creates a solid-color test image.
func createInMemoryImage(width, height int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func mustGrid(rows, cols int) layout.Spec {
	s, err := layout.Grid(rows, cols)
	if err != nil {
		panic(err)
	}
	return s
}

func mustStrip(count int) layout.Spec {
	s, err := layout.Strip(count)
	if err != nil {
		panic(err)
	}
	return s
}

package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestResize_ExactTargetSize(t *testing.T) {
	src := createInMemoryImage(400, 300, color.RGBA{10, 20, 30, 255})

	for _, mode := range []ResizeMode{ResizeMaintain, ResizeStretch, ResizeCrop, ResizePadWhite, ResizePadBlack} {
		out, err := Resize(src, 200, 200, mode, imaging.Lanczos)
		if err != nil {
			t.Fatalf("Resize(%s) failed: %v", mode, err)
		}
		if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 200 {
			t.Errorf("Resize(%s): got %dx%d, want 200x200", mode, out.Bounds().Dx(), out.Bounds().Dy())
		}
	}
}

func TestResize_PadColors(t *testing.T) {
	// A wide red source padded into a square leaves bands at top and
	// bottom in the pad color.
	src := createInMemoryImage(400, 100, color.RGBA{255, 0, 0, 255})

	out, err := Resize(src, 200, 200, ResizePadWhite, imaging.Lanczos)
	if err != nil {
		t.Fatalf("Resize pad_white failed: %v", err)
	}
	r, g, b, _ := out.At(100, 5).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 255 || uint8(b>>8) != 255 {
		t.Errorf("pad_white band: got (%d,%d,%d), want white", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
	r, g, b, _ = out.At(100, 100).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 0 || uint8(b>>8) != 0 {
		t.Errorf("pad_white content: got (%d,%d,%d), want red", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}

	out, err = Resize(src, 200, 200, ResizePadBlack, imaging.Lanczos)
	if err != nil {
		t.Fatalf("Resize pad_black failed: %v", err)
	}
	r, g, b, _ = out.At(100, 5).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("pad_black band: got (%d,%d,%d), want black", r, g, b)
	}
}

func TestResize_CropCoversTarget(t *testing.T) {
	// Crop mode keeps content over the full target: no pad bands anywhere.
	src := createInMemoryImage(400, 100, color.RGBA{0, 255, 0, 255})
	out, err := Resize(src, 200, 200, ResizeCrop, imaging.Lanczos)
	if err != nil {
		t.Fatalf("Resize crop failed: %v", err)
	}
	for _, pt := range []image.Point{{0, 0}, {199, 0}, {0, 199}, {199, 199}, {100, 100}} {
		_, g, _, _ := out.At(pt.X, pt.Y).RGBA()
		if uint8(g>>8) != 255 {
			t.Errorf("crop content at %v: green = %d, want 255", pt, uint8(g>>8))
		}
	}
}

func TestResize_InvalidDimensions(t *testing.T) {
	src := createInMemoryImage(100, 100, color.RGBA{0, 0, 0, 255})

	_, err := Resize(src, 0, 100, ResizeMaintain, imaging.Lanczos)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero target width: err = %v, want ErrInvalidDimensions", err)
	}
	_, err = Resize(src, 100, 0, ResizeMaintain, imaging.Lanczos)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero target height: err = %v, want ErrInvalidDimensions", err)
	}

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	_, err = Resize(empty, 100, 100, ResizeMaintain, imaging.Lanczos)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty source: err = %v, want ErrInvalidDimensions", err)
	}
}

func TestParseResizeMode(t *testing.T) {
	for _, s := range []string{"maintain", "stretch", "crop", "pad_white", "pad_black"} {
		if _, err := ParseResizeMode(s); err != nil {
			t.Errorf("ParseResizeMode(%q): %v", s, err)
		}
	}
	if _, err := ParseResizeMode("squish"); err == nil {
		t.Error("ParseResizeMode(squish) accepted, want error")
	}
}

func TestParseFilter(t *testing.T) {
	// Unknown names and the empty string fall back to Lanczos; the mapping
	// itself just needs to not panic and return something usable.
	for _, name := range []string{"LANCZOS", "BICUBIC", "BILINEAR", "NEAREST", "BOX", "", "bogus"} {
		f := ParseFilter(name)
		if f.Kernel == nil && f.Support > 0 {
			t.Errorf("ParseFilter(%q) returned unusable filter", name)
		}
	}
}

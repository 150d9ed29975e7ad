package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ResizeMode selects how the source aspect ratio is reconciled with the
// planned canvas size.
type ResizeMode string

const (
	// ResizeMaintain resamples directly to the target size, trusting the
	// caller to have chosen an aspect-correct target. Mismatches are
	// accepted silently.
	ResizeMaintain ResizeMode = "maintain"

	// ResizeStretch resamples directly to the target size, distorting if
	// the aspect ratios differ.
	ResizeStretch ResizeMode = "stretch"

	// ResizeCrop scales to cover the target and center-crops the overflow.
	ResizeCrop ResizeMode = "crop"

	// ResizePadWhite scales to fit inside the target and centers the result
	// on a white canvas.
	ResizePadWhite ResizeMode = "pad_white"

	// ResizePadBlack is ResizePadWhite with a black canvas.
	ResizePadBlack ResizeMode = "pad_black"
)

// ParseResizeMode validates a resize mode string.
func ParseResizeMode(s string) (ResizeMode, error) {
	switch ResizeMode(s) {
	case ResizeMaintain, ResizeStretch, ResizeCrop, ResizePadWhite, ResizePadBlack:
		return ResizeMode(s), nil
	}
	return "", fmt.Errorf("unknown resize mode %q (use maintain, stretch, crop, pad_white or pad_black)", s)
}

// ParseFilter maps a config resampling method name to a resample filter.
// Unknown names fall back to Lanczos.
func ParseFilter(name string) imaging.ResampleFilter {
	switch name {
	case "NEAREST":
		return imaging.NearestNeighbor
	case "BOX":
		return imaging.Box
	case "BILINEAR":
		return imaging.Linear
	case "BICUBIC":
		return imaging.CatmullRom
	case "LANCZOS", "":
		return imaging.Lanczos
	}
	return imaging.Lanczos
}

// Resize transforms img to exactly w×h pixels under the given mode. The
// result always has the requested size; only how the content maps onto it
// varies. Zero-sized sources or targets fail with ErrInvalidDimensions.
func Resize(img image.Image, w, h int, mode ResizeMode, filter imaging.ResampleFilter) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: source %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidDimensions, w, h)
	}

	switch mode {
	case ResizeCrop:
		return imaging.Fill(img, w, h, imaging.Center, filter), nil

	case ResizePadWhite, ResizePadBlack:
		bg := color.NRGBA{255, 255, 255, 255}
		if mode == ResizePadBlack {
			bg = color.NRGBA{0, 0, 0, 255}
		}
		fitted := imaging.Fit(img, w, h, filter)
		canvas := imaging.New(w, h, bg)
		return imaging.PasteCenter(canvas, fitted), nil

	default:
		// maintain, stretch, and any future mode resample directly.
		return imaging.Resize(img, w, h, filter), nil
	}
}

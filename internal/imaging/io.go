package imaging

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// SupportedFormats lists the output extensions (without dot) that the raster
// save path accepts.
var SupportedFormats = []string{"jpg", "jpeg", "png", "gif", "tif", "tiff", "bmp"}

// ValidFormat reports whether ext (without dot, any case) is a supported
// output format. The empty string is valid and means "keep the source
// format".
func ValidFormat(ext string) bool {
	if ext == "" {
		return true
	}
	ext = strings.ToLower(ext)
	for _, f := range SupportedFormats {
		if ext == f {
			return true
		}
	}
	return false
}

// Open decodes the image at path. The decode reads the full pixel data, so
// truncated or corrupt files fail here rather than later in the pipeline.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// SaveOptimized writes img to path with per-format encoder tuning: JPEG at
// quality 95 with alpha flattened, PNG at the default compression level.
// The format is chosen by the path's extension.
func SaveOptimized(img image.Image, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imaging.Save(Flatten(img), path, imaging.JPEGQuality(95))
	case ".png":
		return imaging.Save(img, path, imaging.PNGCompressionLevel(png.DefaultCompression))
	default:
		return imaging.Save(img, path)
	}
}

// Flatten composites img over a white background, dropping any alpha
// channel. JPEG-family encoders have no alpha; flattening first avoids
// black-backed transparency artifacts.
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}

// Info holds source file metadata used for run summaries and memory
// estimates.
type Info struct {
	Width         int
	Height        int
	Format        string
	FileSizeBytes int64
}

// Stat decodes the image at path and returns its metadata. The format is
// taken from the file extension.
func Stat(path string) (image.Image, *Info, error) {
	img, err := Open(path)
	if err != nil {
		return nil, nil, err
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	b := img.Bounds()
	return img, &Info{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		FileSizeBytes: st.Size(),
	}, nil
}

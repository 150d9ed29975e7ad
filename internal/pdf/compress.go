package pdf

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/smaxiso/poster-maker/internal/config"
	"github.com/smaxiso/poster-maker/internal/imaging"
)

// CompressTile re-encodes a tile raster into a temporary file suitable for
// embedding. When downsampling is enabled and the tile's nominal DPI exceeds
// the target, both axes are scaled uniformly by targetDPI/currentDPI first.
// JPEG output is flattened over white since JPEG has no alpha channel.
//
// The returned cleanup must be called on every exit path; it removes the
// temporary file and only logs on failure (a leftover temp file is not worth
// aborting a run over). Each tile gets its own uniquely named file, so
// concurrent compression of different tiles cannot collide.
func CompressTile(img image.Image, index, currentDPI int, opt config.Optimization) (path string, w, h int, cleanup func(), err error) {
	if opt.DownsampleImages && currentDPI > opt.DownsampleResolutionDPI {
		scale := float64(opt.DownsampleResolutionDPI) / float64(currentDPI)
		b := img.Bounds()
		newW := int(float64(b.Dx()) * scale)
		newH := int(float64(b.Dy()) * scale)
		if newW > 0 && newH > 0 {
			img = transform.Resize(img, newW, newH, transform.Lanczos)
		}
	}

	var encode imgio.Encoder
	ext := ".png"
	if opt.UseJPEGCompression {
		img = imaging.Flatten(img)
		encode = imgio.JPEGEncoder(opt.CompressionQuality)
		ext = ".jpg"
	} else {
		encode = imgio.PNGEncoder()
	}

	f, err := os.CreateTemp("", fmt.Sprintf("poster_tile_%d_*%s", index, ext))
	if err != nil {
		return "", 0, 0, nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	path = f.Name()

	if err := encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", 0, 0, nil, fmt.Errorf("failed to encode tile %d: %w", index, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", 0, 0, nil, fmt.Errorf("failed to write tile %d: %w", index, err)
	}

	cleanup = func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("warning: failed to remove temporary file %s: %v", path, err)
		}
	}
	b := img.Bounds()
	return path, b.Dx(), b.Dy(), cleanup, nil
}

package favicon

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "github.com/sergeymakinen/go-ico"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// SVGRasterSize is the longer side, in pixels, that SVG sources are
// rasterised to before scaling.
const SVGRasterSize = 1024

// Load decodes the source image at path. Raster formats are decoded with
// EXIF orientation applied; .svg files are rasterised.
func Load(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return loadSVG(path)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, loadError(path, err)
	}
	return img, nil
}

func loadError(path string, err error) error {
	kind := ErrIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrMissingSource
	case errors.Is(err, image.ErrFormat):
		kind = ErrUnsupportedFormat
	}
	return &Error{Op: "load", Path: path, Err: fmt.Errorf("%w: %w", kind, err)}
}

func loadSVG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, loadError(path, err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, &Error{Op: "load", Path: path, Err: fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)}
	}
	w, h := svgSize(icon.ViewBox.W, icon.ViewBox.H)
	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	dasher := rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, rgba, rgba.Bounds()))
	icon.Draw(dasher, 1.0)
	return rgba, nil
}

// svgSize keeps the viewBox aspect ratio with the longer side at
// SVGRasterSize. A missing viewBox gives a square.
func svgSize(vw, vh float64) (int, int) {
	if vw <= 0 || vh <= 0 {
		return SVGRasterSize, SVGRasterSize
	}
	if vw >= vh {
		return SVGRasterSize, max(int(SVGRasterSize*vh/vw), 1)
	}
	return max(int(SVGRasterSize*vw/vh), 1), SVGRasterSize
}

package favicon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"

	"favicongen/render"
)

// Build renders o from src and returns the encoded file.
func Build(src image.Image, o Output, opts render.Options) ([]byte, error) {
	sizes := o.Sizes()
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		img, err := render.Render(src, size, opts)
		if err != nil {
			return nil, &Error{Op: "render", Path: o.Name, Err: err}
		}
		images = append(images, img)
	}

	var buf bytes.Buffer
	var err error
	switch o.Format {
	case ICO:
		err = EncodeICO(&buf, images)
	case PNG:
		err = EncodePNG(&buf, images[0])
	default:
		err = fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, o.Format)
	}
	if err != nil {
		return nil, &Error{Op: "encode", Path: o.Name, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	return buf.Bytes(), nil
}

func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}

// EncodeICO writes one ICO directory entry per image, in order.
func EncodeICO(w io.Writer, images []image.Image) error {
	return ico.EncodeAll(w, images)
}

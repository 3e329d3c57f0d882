package render

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// ErrUnknownFilter is returned for resampling filter names that are not
// registered. Nearest-neighbour is deliberately absent.
var ErrUnknownFilter = errors.New("render: unknown resampling filter")

// Filter names a resampling filter.
type Filter string

const (
	Lanczos    Filter = "lanczos"
	Mitchell   Filter = "mitchell"
	CatmullRom Filter = "catmullrom"
	BiLinear   Filter = "bilinear"
)

type scaleFunc func(src image.Image, w, h int) image.Image

var scalers = map[Filter]scaleFunc{
	Lanczos:    imagingScaler(imaging.Lanczos),
	Mitchell:   imagingScaler(imaging.MitchellNetravali),
	CatmullRom: kernelScaler(draw.CatmullRom),
	BiLinear:   kernelScaler(draw.BiLinear),
}

func imagingScaler(f imaging.ResampleFilter) scaleFunc {
	return func(src image.Image, w, h int) image.Image {
		return imaging.Resize(src, w, h, f)
	}
}

func kernelScaler(s draw.Scaler) scaleFunc {
	return func(src image.Image, w, h int) image.Image {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		s.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
		return dst
	}
}

// ParseFilter resolves a filter name case-insensitively. An empty name
// selects Lanczos.
func ParseFilter(name string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return Lanczos, nil
	}
	if _, ok := scalers[f]; !ok {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFilter, name, strings.Join(Filters(), ", "))
	}
	return f, nil
}

// Filters lists the registered filter names in sorted order.
func Filters() []string {
	names := make([]string, 0, len(scalers))
	for f := range scalers {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

func (f Filter) scaler() (scaleFunc, error) {
	if f == "" {
		f = Lanczos
	}
	s, ok := scalers[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, string(f))
	}
	return s, nil
}

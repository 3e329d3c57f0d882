package favicon

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sort"
	"strings"

	"favicongen/render"
)

// Format is the encoding of an output file.
type Format string

const (
	PNG Format = "png"
	ICO Format = "ico"
)

// maxICOSize is the largest side an ICO directory entry can describe.
const maxICOSize = 256

// Output is one row of the output table.
type Output struct {
	Name   string
	Size   int
	Format Format
	// ICOSizes lists the resolutions embedded in an ICO file. Empty means
	// the single resolution Size.
	ICOSizes []int
}

// Sizes returns every resolution rendered for o.
func (o Output) Sizes() []int {
	if o.Format == ICO && len(o.ICOSizes) > 0 {
		return o.ICOSizes
	}
	return []int{o.Size}
}

// FormatFor infers the output format from a file name.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG, nil
	case ".ico":
		return ICO, nil
	}
	return "", fmt.Errorf("%w: cannot infer format of %q", ErrInvalidConfig, name)
}

// Config is everything Generate needs.
type Config struct {
	Source  string
	OutDir  string
	Options render.Options
	Outputs []Output
	// Manifest also writes site.webmanifest next to the icons.
	Manifest bool
}

// Validate checks the output table and render options.
func (c Config) Validate() error {
	if err := render.CheckPadding(c.Options.Padding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := render.ParseFilter(string(c.Options.Filter)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Outputs) == 0 {
		return fmt.Errorf("%w: no outputs", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Outputs))
	for _, o := range c.Outputs {
		if o.Name == "" || o.Name != filepath.Base(o.Name) {
			return fmt.Errorf("%w: bad output name %q", ErrInvalidConfig, o.Name)
		}
		if seen[o.Name] {
			return fmt.Errorf("%w: duplicate output %q", ErrInvalidConfig, o.Name)
		}
		seen[o.Name] = true
		switch o.Format {
		case PNG, ICO:
		default:
			return fmt.Errorf("%w: %s: unknown format %q", ErrInvalidConfig, o.Name, o.Format)
		}
		for _, s := range o.Sizes() {
			if s <= 0 {
				return fmt.Errorf("%w: %s: %d", ErrInvalidSize, o.Name, s)
			}
			if o.Format == ICO && s > maxICOSize {
				return fmt.Errorf("%w: %s: ico entries are limited to %dpx, got %d", ErrInvalidSize, o.Name, maxICOSize, s)
			}
		}
	}
	return nil
}

// Preset bundles the defaults of one favicon style.
type Preset struct {
	Name       string
	Source     string
	Padding    float64
	Background color.Color
	Outputs    []Output
}

// Transparent centres the logo with a 5% border on a clear canvas.
var Transparent = Preset{
	Name:    "transparent",
	Source:  "da_sportz_logo.png",
	Padding: 0.05,
	Outputs: []Output{
		{Name: "favicon.ico", Size: 32, Format: ICO},
		{Name: "favicon-16x16.png", Size: 16, Format: PNG},
		{Name: "favicon-32x32.png", Size: 32, Format: PNG},
		{Name: "favicon-48x48.png", Size: 48, Format: PNG},
		{Name: "apple-touch-icon.png", Size: 180, Format: PNG},
		{Name: "android-chrome-192x192.png", Size: 192, Format: PNG},
		{Name: "android-chrome-512x512.png", Size: 512, Format: PNG},
	},
}

// White flattens the logo onto opaque white. The border is 10% of the
// squared logo on each side, i.e. 0.1/1.2 of the final canvas.
var White = Preset{
	Name:       "white",
	Source:     "logo_source.png",
	Padding:    0.1 / 1.2,
	Background: color.White,
	Outputs: []Output{
		{Name: "favicon-512.png", Size: 512, Format: PNG},
		{Name: "apple-touch-icon.png", Size: 180, Format: PNG},
		{Name: "android-chrome-192x192.png", Size: 192, Format: PNG},
		{Name: "android-chrome-512x512.png", Size: 512, Format: PNG},
		{Name: "favicon-32x32.png", Size: 32, Format: PNG},
		{Name: "favicon-16x16.png", Size: 16, Format: PNG},
		{Name: "favicon.png", Size: 48, Format: PNG},
	},
}

var presets = map[string]Preset{
	Transparent.Name: Transparent,
	White.Name:       White,
}

// LookupPreset finds a preset by name. An empty name selects Transparent.
func LookupPreset(name string) (Preset, error) {
	if name == "" {
		return Transparent, nil
	}
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return Preset{}, fmt.Errorf("%w: unknown preset %q (want one of %s)",
			ErrInvalidConfig, name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Config returns a Config filled from the preset.
func (p Preset) Config() Config {
	return Config{
		Source: p.Source,
		Options: render.Options{
			Padding:    p.Padding,
			Background: p.Background,
			Filter:     render.Lanczos,
		},
		Outputs: append([]Output(nil), p.Outputs...),
	}
}

// Names lists the file names of outputs.
func Names(outputs []Output) []string {
	names := make([]string, len(outputs))
	for i, o := range outputs {
		names[i] = o.Name
	}
	return names
}

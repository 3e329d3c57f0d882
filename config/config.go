// Package config reads favicon.toml and merges it with command-line
// overrides and the chosen preset.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"favicongen/favicon"
	"favicongen/render"
)

// DefaultFile is looked up in the working directory when no file is named.
const DefaultFile = "favicon.toml"

// File mirrors favicon.toml.
type File struct {
	Preset     string   `toml:"preset"`
	Source     string   `toml:"source"`
	Out        string   `toml:"out"`
	Padding    *float64 `toml:"padding"`
	Background string   `toml:"background"`
	Filter     string   `toml:"filter"`
	Manifest   bool     `toml:"manifest"`
	Outputs    []Output `toml:"output"`
}

// Output is one [[output]] table.
type Output struct {
	Name     string `toml:"name"`
	Size     int    `toml:"size"`
	Format   string `toml:"format"`
	ICOSizes []int  `toml:"ico_sizes"`
}

// Load parses the TOML file at path. Unknown keys are rejected.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", favicon.ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s: unknown keys %s", favicon.ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return &f, nil
}

// Find loads the named file, or DefaultFile inside dir when name is empty.
// A missing default file is not an error and yields an empty File; the
// returned path is then empty.
func Find(dir, name string) (*File, string, error) {
	if name != "" {
		f, err := Load(name)
		return f, name, err
	}
	path := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return &File{}, "", nil
	}
	f, err := Load(path)
	return f, path, err
}

// Overrides holds values given on the command line. Empty strings and nil
// pointers leave the file or preset value in place.
type Overrides struct {
	Preset     string
	Source     string
	Out        string
	Padding    *float64
	Background string
	Filter     string
	Manifest   bool
}

// Resolve builds the generator configuration. Flags win over the file,
// which wins over the preset.
func Resolve(f *File, o Overrides) (favicon.Config, error) {
	if f == nil {
		f = &File{}
	}
	preset, err := favicon.LookupPreset(first(o.Preset, f.Preset))
	if err != nil {
		return favicon.Config{}, err
	}
	cfg := preset.Config()

	cfg.Source = first(o.Source, f.Source, cfg.Source)
	cfg.OutDir = first(o.Out, f.Out)
	cfg.Manifest = o.Manifest || f.Manifest

	switch {
	case o.Padding != nil:
		cfg.Options.Padding = *o.Padding
	case f.Padding != nil:
		cfg.Options.Padding = *f.Padding
	}

	if bg := first(o.Background, f.Background); bg != "" {
		c, err := ParseColor(bg)
		if err != nil {
			return favicon.Config{}, err
		}
		cfg.Options.Background = c
	}

	filter, err := render.ParseFilter(first(o.Filter, f.Filter))
	if err != nil {
		return favicon.Config{}, fmt.Errorf("%w: %w", favicon.ErrInvalidConfig, err)
	}
	cfg.Options.Filter = filter

	if len(f.Outputs) > 0 {
		outputs, err := convertOutputs(f.Outputs)
		if err != nil {
			return favicon.Config{}, err
		}
		cfg.Outputs = outputs
	}

	if err := cfg.Validate(); err != nil {
		return favicon.Config{}, err
	}
	return cfg, nil
}

func convertOutputs(in []Output) ([]favicon.Output, error) {
	out := make([]favicon.Output, 0, len(in))
	for _, o := range in {
		format := favicon.Format(strings.ToLower(o.Format))
		if format == "" {
			var err error
			if format, err = favicon.FormatFor(o.Name); err != nil {
				return nil, err
			}
		}
		size := o.Size
		if size == 0 && len(o.ICOSizes) > 0 {
			size = o.ICOSizes[len(o.ICOSizes)-1]
		}
		out = append(out, favicon.Output{
			Name:     o.Name,
			Size:     size,
			Format:   format,
			ICOSizes: o.ICOSizes,
		})
	}
	return out, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

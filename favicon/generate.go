// Package favicon turns one logo into the set of favicon files a website
// serves: it walks an output table, renders each entry and writes it out.
package favicon

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/amalfra/etag/v3"

	"favicongen/utils"
)

// Result describes a written output.
type Result struct {
	Output Output
	Path   string
	Bytes  int
	// ETag is a weak entity tag over the file contents.
	ETag string
}

// Generate renders and writes every output of cfg into cfg.OutDir, in table
// order. Files written before a failure are left in place.
func Generate(ctx context.Context, src image.Image, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := utils.LoggerFrom(ctx)

	results := make([]Result, 0, len(cfg.Outputs))
	for _, o := range cfg.Outputs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		data, err := Build(src, o, cfg.Options)
		if err != nil {
			return results, err
		}
		path := filepath.Join(cfg.OutDir, o.Name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return results, &Error{Op: "write", Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
		}
		logger.Info("created", "file", o.Name, "size", fmt.Sprintf("%dx%d", o.Size, o.Size))
		logger.Debug("wrote", "path", path, "bytes", len(data), "format", o.Format)
		results = append(results, Result{
			Output: o,
			Path:   path,
			Bytes:  len(data),
			ETag:   etag.Generate(string(data), true),
		})
	}
	return results, nil
}

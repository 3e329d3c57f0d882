package favicon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hymkor/trash-go"

	"favicongen/utils"
)

// throw moves a file to the trash; replaced in tests.
var throw = func(path string) error { return trash.Throw(path) }

// Clean moves the named files in dir to the system trash and returns the
// paths it moved. Missing files, symlinks and directories are skipped.
func Clean(ctx context.Context, dir string, names []string) ([]string, error) {
	logger := utils.LoggerFrom(ctx)
	var moved []string
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return moved, err
		}
		path := filepath.Join(dir, name)
		info, err := os.Lstat(path)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("not present", "file", name)
			continue
		}
		if err != nil {
			return moved, &Error{Op: "stat", Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
		}
		if utils.IsIgnoreFile(info) {
			logger.Warn("skipping", "file", name, "mode", info.Mode().Type().String())
			continue
		}
		if err := throw(path); err != nil {
			return moved, &Error{Op: "trash", Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
		}
		logger.Info("trashed", "file", name)
		moved = append(moved, path)
	}
	return moved, nil
}

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputDir resolves dir to an absolute directory, creating it when needed.
// An empty dir means the working directory.
func OutputDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	fp, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(fp, 0o755); err != nil {
		return "", err
	}
	info, err := os.Stat(fp)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", fp)
	}
	return fp, nil
}

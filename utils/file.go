//go:build !windows

package utils

import (
	"os"
)

// IsIgnoreFile reports whether info describes a file that tools must leave
// alone: symlinks, directories and other non-regular files.
func IsIgnoreFile(info os.FileInfo) bool {
	return !info.Mode().IsRegular()
}

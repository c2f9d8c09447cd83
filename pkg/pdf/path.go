package pdf

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the file extension every rendered document carries.
const Extension = ".pdf"

// NormalizePath cleans a destination path and forces the .pdf extension. It
// rejects blank paths, directories and paths whose parent does not exist.
// Writability is only known when the file is created.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", invalidPath(path, "path is empty")
	}

	clean := filepath.Clean(trimmed)
	if !strings.EqualFold(filepath.Ext(clean), Extension) {
		clean += Extension
	}

	if info, err := os.Stat(clean); err == nil && info.IsDir() {
		return "", invalidPath(clean, "path is a directory")
	}

	dir := filepath.Dir(clean)
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", invalidPath(clean, "directory %s does not exist", dir)
	case err != nil:
		return "", invalidPath(clean, "%w", err)
	case !info.IsDir():
		return "", invalidPath(clean, "%s is not a directory", dir)
	}
	return clean, nil
}

package utils

import "path/filepath"

// GetAbsolutePath returns path unchanged if it is already absolute,
// otherwise joins it with baseDir and cleans the result.
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

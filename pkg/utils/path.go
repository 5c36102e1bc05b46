package utils

import (
	"path/filepath"
	"strings"
)

func IsImage(path string) bool {
	extension := strings.ToLower(filepath.Ext(path))
	switch extension {
	case ".png":
		return true
	case ".jpg", ".jpeg":
		return true
	case ".gif":
		return true
	case ".webp":
		return true
	case ".bmp":
		return true
	case ".tif", ".tiff":
		return true
	default:
		return false
	}
}

func NotImage(path string) bool {
	return !IsImage(path)
}

// SwapRoot maps path from under root to the same relative location under dest.
func SwapRoot(path, root, dest string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dest, rel), nil
}

package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// RandomFilename generates a collision-resistant filename, preserving the
// original file's extension. fallbackExt is used when the original name has
// no extension.
func RandomFilename(original, fallbackExt string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = fallbackExt
	}
	return uuid.NewString() + ext
}

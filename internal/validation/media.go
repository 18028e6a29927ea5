package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/galleryd-dev/galleryd/internal/domain"
)

// ValidateUpload checks an uploaded file against the configured limits and
// returns its normalized (lowercase, dot-less) extension. Checks run in a
// fixed order and short-circuit: size first, extension second.
func ValidateUpload(upload *domain.PendingUpload, maxSizeBytes int64, allowedExtensions []string) (string, error) {
	if upload.SizeBytes > maxSizeBytes {
		return "", fmt.Errorf("%w: file is too large (max %.0f MB)", ErrFileTooLarge, FormatSizeMB(maxSizeBytes))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(upload.Filename), "."))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: only %s files are allowed", ErrUnsupportedMediaType, strings.ToUpper(strings.Join(allowedExtensions, ", ")))
}

// FormatSizeMB converts bytes to megabytes for user-friendly error messages.
func FormatSizeMB(bytes int64) float64 {
	return float64(bytes) / 1_000_000
}

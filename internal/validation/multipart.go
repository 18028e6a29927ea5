package validation

import (
	"fmt"
	"net/http"
)

// ValidateAndParseMultipart enforces the request size limit and parses the
// multipart form. MaxBytesReader is the security boundary here: it stops
// reading once the limit is exceeded, so an oversized upload can never
// exhaust disk or memory regardless of its declared size.
func ValidateAndParseMultipart(r *http.Request, w http.ResponseWriter, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return fmt.Errorf("%w: failed to parse multipart form", ErrFileTooLarge)
	}

	return nil
}

// CalculateMaxRequestSize returns the maximum request size including an
// overhead buffer (typically 1 MiB) for form fields and multipart framing.
func CalculateMaxRequestSize(maxMediaSize int64, bufferSize int64) int64 {
	return maxMediaSize + bufferSize
}

package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/galleryd-dev/galleryd/internal/service"
	"github.com/google/uuid"
)

type Storage struct {
	rootPath string
}

// Ensure Storage implements the interface at compile time.
var _ service.MediaStorage = (*Storage)(nil)

func New(rootPath string) (*Storage, error) {
	// filepath.Clean prevents traversal like "uploads/../"
	p := filepath.Clean(rootPath)

	// The upload directory must exist and be writable before any media
	// operation runs.
	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", p, err)
	}

	return &Storage{rootPath: p}, nil
}

// Save writes the file under a generated unique name preserving the given
// extension and returns that name. The original filename never reaches disk.
func (s *Storage) Save(fileData io.Reader, extension string) (string, error) {
	filename := fmt.Sprintf("%s.%s", uuid.NewString(), filepath.Clean(extension))
	fullPath := filepath.Join(s.rootPath, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, fileData); err != nil {
		// If the copy fails, clean up the partial file. Best effort.
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	return filename, nil
}

// Read opens a stored file for reading.
func (s *Storage) Read(filename string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.rootPath, filepath.Clean(filename))

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("media not found: %w", err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes a stored file. A file that is already gone is not an error,
// so cleanup stays idempotent.
func (s *Storage) Delete(filename string) error {
	fullPath := filepath.Join(s.rootPath, filepath.Clean(filename))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Root returns the directory files are stored under, for static serving.
func (s *Storage) Root() string {
	return s.rootPath
}

package service

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/galleryd-dev/galleryd/internal/config"
	"github.com/galleryd-dev/galleryd/internal/domain"
	"github.com/galleryd-dev/galleryd/internal/validation"
)

// mediaPrefix is the path segment media references are served under. Stored
// references look like "uploads/<uuid>.<ext>" and are resolvable as-is by
// the static file route.
const mediaPrefix = "uploads"

type MediaService interface {
	Accept(upload *domain.PendingUpload) (string, error)
	Release(ref string) error
}

type MediaStorage interface {
	// Save stores a file's content under a generated unique name preserving
	// the given extension and returns that name.
	Save(fileData io.Reader, extension string) (string, error)

	// Read opens a stored file given its name.
	Read(filename string) (io.ReadCloser, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(filename string) error
}

type Media struct {
	storage MediaStorage
	cfg     *config.Public
}

func NewMedia(storage MediaStorage, cfg *config.Public) *Media {
	return &Media{storage, cfg}
}

// Accept validates an upload (size limit first, then extension whitelist,
// short-circuiting on the first failure) and writes it to durable storage.
// Validation is extension-only; the content bytes are not sniffed.
func (m *Media) Accept(upload *domain.PendingUpload) (string, error) {
	ext, err := validation.ValidateUpload(upload, m.cfg.MaxMediaSizeBytes, m.cfg.AllowedExtensions)
	if err != nil {
		return "", err
	}

	filename, err := m.storage.Save(upload.Data, ext)
	if err != nil {
		return "", fmt.Errorf("failed to store media: %w", err)
	}

	return path.Join(mediaPrefix, filename), nil
}

// Release deletes the file behind a media reference. A reference whose file
// is already gone releases cleanly.
func (m *Media) Release(ref string) error {
	filename := strings.TrimPrefix(ref, mediaPrefix+"/")
	return m.storage.Delete(filename)
}

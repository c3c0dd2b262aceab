package ports

import (
	"context"
	"io"
)

// ImageUpload is an image file received from a client.
type ImageUpload struct {
	// Filename is the client-supplied name, used only for logging.
	Filename string
	Size     int64
	Content  io.Reader
}

// ImageStore stores project images. Delete and Exists never return errors;
// failures are logged by the implementation.
type ImageStore interface {
	// Store validates and writes the upload and returns its storage path.
	// When oldPath is non-empty it is deleted after the new image is written.
	// Returns domain.ErrInvalidInput when the upload is rejected.
	Store(ctx context.Context, upload ImageUpload, oldPath string) (string, error)

	// Delete removes the image at path and reports whether it succeeded.
	Delete(ctx context.Context, path string) bool

	// Exists reports whether an image is stored at path.
	Exists(ctx context.Context, path string) bool

	// URL returns the public URL for path.
	URL(path string) string

	// CleanupOrphans deletes stored images not present in referenced and
	// returns how many were deleted.
	CleanupOrphans(ctx context.Context, referenced []string) (int, error)
}

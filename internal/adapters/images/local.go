package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalBackend stores images as files under a root directory.
type LocalBackend struct {
	root string
}

// NewLocalBackend creates the root directory if needed.
func NewLocalBackend(root string) (*LocalBackend, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("creating image directory %s: %w", root, err)
	}
	return &LocalBackend{root: root}, nil
}

// Root returns the directory holding the files.
func (b *LocalBackend) Root() string { return b.root }

// Put writes r to key through a temporary file so readers never see a
// partial image.
func (b *LocalBackend) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	dst := b.resolve(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", key, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("moving %s into place: %w", key, err)
	}
	return nil
}

// Delete removes the file at key.
func (b *LocalBackend) Delete(_ context.Context, key string) error {
	return os.Remove(b.resolve(key))
}

// Exists reports whether a regular file is stored at key.
func (b *LocalBackend) Exists(_ context.Context, key string) (bool, error) {
	info, err := os.Stat(b.resolve(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// List returns the keys of the regular files directly under prefix.
// Temporary upload files are skipped.
func (b *LocalBackend) List(_ context.Context, prefix string) ([]string, error) {
	entries, err := os.ReadDir(b.resolve(prefix))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", prefix, err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		keys = append(keys, path.Join(prefix, e.Name()))
	}
	return keys, nil
}

// Handler serves stored files read-only. Directories and missing keys are
// reported as 404, so listings are never exposed. Keys are immutable, which
// lets clients cache them indefinitely.
func (b *LocalBackend) Handler() http.Handler {
	files := http.FileServer(http.Dir(b.root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		ok, err := b.Exists(r.Context(), r.URL.Path)
		if err != nil || !ok || strings.HasPrefix(path.Base(r.URL.Path), ".") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		files.ServeHTTP(w, r)
	})
}

// Check verifies the root directory is still present.
func (b *LocalBackend) Check(_ context.Context) error {
	info, err := os.Stat(b.root)
	if err != nil {
		return fmt.Errorf("image directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("image directory %s is not a directory", b.root)
	}
	return nil
}

// resolve maps key to a path under root. Cleaning the key as a rooted path
// drops any leading ".." so the result never escapes root.
func (b *LocalBackend) resolve(key string) string {
	return filepath.Join(b.root, filepath.FromSlash(path.Clean("/"+key)))
}

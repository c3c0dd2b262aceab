package images_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/images"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
)

func TestNewBackend_Local(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "uploads")
	backend, err := images.NewBackend(context.Background(), &config.ImagesConfig{Backend: images.BackendLocal, Dir: dir}, nil, nil)
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	if _, ok := backend.(*images.LocalBackend); !ok {
		t.Fatalf("NewBackend() = %T, want *images.LocalBackend", backend)
	}
	if err := backend.Check(context.Background()); err != nil {
		t.Errorf("Check() error = %v, want nil", err)
	}
}

func TestNewBackend_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := images.NewBackend(context.Background(), &config.ImagesConfig{Backend: "ftp"}, nil, nil)
	if err == nil {
		t.Fatal("NewBackend() error = nil, want error")
	}
}

// Package images stores project images behind the ports.ImageStore port.
//
// A Service validates uploads (detected type, size, minimum dimensions),
// names them under projects/, and writes them through a Backend. Two
// backends are provided: LocalBackend (a directory served by the HTTP
// server) and MinIOBackend (any S3-compatible object store).
package images

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"  // register GIF for image.DecodeConfig
	_ "image/jpeg" // register JPEG for image.DecodeConfig
	_ "image/png"  // register PNG for image.DecodeConfig
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp" // register WebP for image.DecodeConfig

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// Prefix is the key prefix under which project images are stored.
const Prefix = "projects/"

const fieldImage = "image"

// allowedTypes maps accepted MIME types to the stored file extension.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Backend is the raw key/value storage behind a Service. Keys use forward
// slashes regardless of platform.
type Backend interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// List returns every key that starts with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// Check verifies the backend is reachable.
	Check(ctx context.Context) error
}

// Compile-time check that Service implements ports.ImageStore.
var _ ports.ImageStore = (*Service)(nil)

// Service implements ports.ImageStore and ports.HealthChecker.
type Service struct {
	backend   Backend
	baseURL   string
	maxBytes  int64
	minWidth  int
	minHeight int
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a Service writing to backend with the limits in cfg.
// If metrics is nil, metric recording is skipped. A nil logger discards output.
func NewService(backend Backend, cfg *config.ImagesConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		backend:   backend,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes:  cfg.MaxBytes,
		minWidth:  cfg.MinWidth,
		minHeight: cfg.MinHeight,
		metrics:   metrics,
		logger:    logger,
		now:       domain.Now,
	}
}

// Store validates upload, writes it under a fresh name, and then deletes
// oldPath when it is non-empty. A failed deletion of the old image is logged
// and does not fail the call.
func (s *Service) Store(ctx context.Context, upload ports.ImageUpload, oldPath string) (string, error) {
	data, ext, err := s.validate(upload)
	if err != nil {
		return "", err
	}

	key, err := s.newKey(ext)
	if err != nil {
		return "", err
	}

	contentType := mimetype.Detect(data).String()
	if err := s.backend.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", fmt.Errorf("writing image %s: %w", key, err)
	}

	s.logger.InfoContext(ctx, "image stored",
		slog.String("path", key),
		slog.Int("bytes", len(data)),
	)

	if oldPath != "" && oldPath != key {
		s.Delete(ctx, oldPath)
	}
	return key, nil
}

// validate reads the upload and checks its size, type, and dimensions.
// It returns the content and the extension for the detected type.
func (s *Service) validate(upload ports.ImageUpload) ([]byte, string, error) {
	if upload.Content == nil {
		return nil, "", domain.NewValidationError(fieldImage, domain.MsgRequired)
	}

	tooLarge := domain.NewValidationError(fieldImage,
		fmt.Sprintf("must not exceed %d MB", s.maxBytes/(1<<20)))
	if upload.Size > s.maxBytes {
		return nil, "", tooLarge
	}

	data, err := io.ReadAll(io.LimitReader(upload.Content, s.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, "", tooLarge
	}
	if len(data) == 0 {
		return nil, "", domain.NewValidationError(fieldImage, domain.MsgRequired)
	}

	mt := mimetype.Detect(data)
	ext, ok := allowedTypes[mt.String()]
	if !ok {
		return nil, "", domain.NewValidationError(fieldImage, "must be a JPEG, PNG, GIF or WebP image")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", domain.NewValidationError(fieldImage, "dimensions could not be read")
	}
	if cfg.Width < s.minWidth || cfg.Height < s.minHeight {
		return nil, "", domain.NewValidationError(fieldImage,
			fmt.Sprintf("must be at least %dx%d pixels", s.minWidth, s.minHeight))
	}

	return data, ext, nil
}

// newKey returns projects/<unix seconds>_<8 hex chars>.<ext>.
func (s *Service) newKey(ext string) (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generating image name: %w", err)
	}
	return fmt.Sprintf("%s%d_%s.%s", Prefix, s.now().Unix(), hex.EncodeToString(b[:]), ext), nil
}

// Delete removes the image at path. It reports false when path is empty,
// nothing is stored there, or the backend fails.
func (s *Service) Delete(ctx context.Context, path string) bool {
	if path == "" || !s.Exists(ctx, path) {
		return false
	}
	if err := s.backend.Delete(ctx, path); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete image",
			slog.String("operation", "Delete"),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return false
	}
	return true
}

// Exists reports whether an image is stored at path. Backend errors are
// logged and reported as false.
func (s *Service) Exists(ctx context.Context, path string) bool {
	if path == "" {
		return false
	}
	ok, err := s.backend.Exists(ctx, path)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check image",
			slog.String("operation", "Exists"),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return false
	}
	return ok
}

// URL returns the public URL of path, or "" for an empty path.
func (s *Service) URL(path string) string {
	if path == "" {
		return ""
	}
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Orphans returns the stored image keys absent from referenced.
func (s *Service) Orphans(ctx context.Context, referenced []string) ([]string, error) {
	keys, err := s.backend.List(ctx, Prefix)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	inUse := make(map[string]struct{}, len(referenced))
	for _, path := range referenced {
		inUse[path] = struct{}{}
	}

	var orphans []string
	for _, key := range keys {
		if _, ok := inUse[key]; !ok {
			orphans = append(orphans, key)
		}
	}
	return orphans, nil
}

// CleanupOrphans deletes every stored image absent from referenced and
// returns the number deleted. Individual delete failures are logged and
// skipped.
func (s *Service) CleanupOrphans(ctx context.Context, referenced []string) (int, error) {
	orphans, err := s.Orphans(ctx, referenced)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, key := range orphans {
		if err := s.backend.Delete(ctx, key); err != nil {
			s.logger.ErrorContext(ctx, "failed to delete orphaned image",
				slog.String("operation", "CleanupOrphans"),
				slog.String("path", key),
				slog.Any("error", err),
			)
			continue
		}
		deleted++
	}

	if s.metrics != nil && deleted > 0 {
		s.metrics.OrphanImagesDeleted.Add(ctx, int64(deleted))
	}
	s.logger.InfoContext(ctx, "orphaned images cleaned up",
		slog.Int("found", len(orphans)),
		slog.Int("deleted", deleted),
	)
	return deleted, nil
}

// Name returns "images".
func (s *Service) Name() string { return "images" }

// HealthCheck verifies the backend is reachable.
func (s *Service) HealthCheck(ctx context.Context) error {
	return s.backend.Check(ctx)
}

package images

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/resilience"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/telemetry"
)

// Backend names accepted in images.backend.
const (
	BackendLocal = "local"
	BackendMinIO = "minio"
)

// NewBackend returns the Backend selected by cfg.Backend. The MinIO backend
// gets its own resilience executor named "minio".
func NewBackend(ctx context.Context, cfg *config.ImagesConfig, metrics *telemetry.Metrics, logger *slog.Logger) (Backend, error) {
	switch cfg.Backend {
	case BackendLocal:
		return NewLocalBackend(cfg.Dir)
	case BackendMinIO:
		exec := resilience.New(&cfg.MinIO.Resilience, "minio", metrics, logger)
		return NewMinIOBackend(ctx, &cfg.MinIO, exec)
	default:
		return nil, fmt.Errorf("unsupported image backend %q", cfg.Backend)
	}
}

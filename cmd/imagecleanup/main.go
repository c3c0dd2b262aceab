// Package main removes stored project images that no project references.
// It loads the same configuration as the server, so it cleans whichever
// backend the profile selects. Run it from cron or by hand:
//
//	APP_PROFILE=prod imagecleanup
//	APP_PROFILE=prod imagecleanup -dry-run
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/images"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/logging"
)

const runTimeout = 5 * time.Minute

func main() {
	dryRun := flag.Bool("dry-run", false, "list orphaned images without deleting them")
	flag.Parse()

	if err := run(*dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(dryRun bool) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", "portfolio-imagecleanup"),
		slog.String("profile", profile),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	store, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:          cfg.Storage.Driver,
		DSN:             cfg.Storage.DSN,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()

	backend, err := images.NewBackend(ctx, &cfg.Images, nil, logger)
	if err != nil {
		return fmt.Errorf("opening image backend: %w", err)
	}
	svc := images.NewService(backend, &cfg.Images, nil, logger)

	referenced, err := store.Projects().ImagePaths(ctx)
	if err != nil {
		return fmt.Errorf("collecting referenced images: %w", err)
	}

	if dryRun {
		orphans, err := svc.Orphans(ctx, referenced)
		if err != nil {
			return err
		}
		for _, path := range orphans {
			logger.Info("orphaned image", slog.String("path", path))
		}
		logger.Info("dry run complete",
			slog.Int("referenced", len(referenced)),
			slog.Int("orphans", len(orphans)),
		)
		return nil
	}

	deleted, err := svc.CleanupOrphans(ctx, referenced)
	if err != nil {
		return err
	}
	logger.Info("image cleanup complete",
		slog.Int("referenced", len(referenced)),
		slog.Int("deleted", deleted),
	)
	return nil
}

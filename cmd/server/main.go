// Package main is the entry point for the portfolio service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/portfolio-service/internal/adapters/http"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/images"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/mail"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/storage/cache"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/portfolio-service/internal/app"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/health"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/logging"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/resilience"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	startupTimeout        = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, including the
	// database connection and migrations).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	defer closeResources(injector, cfg, logger)

	// Register health checkers after the graph is wired. Mail and the cache
	// have fallbacks, so they only degrade readiness.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*sqlstore.Store](injector))
	registry.Register(do.MustInvoke[*images.Service](injector))
	registry.RegisterOptional(do.MustInvoke[*resilience.Executor](injector))
	if cfg.Cache.Enabled {
		registry.RegisterOptional(do.MustInvoke[*cache.Cache](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Let contact mail queued by the last requests go out.
	if contacts, err := do.Invoke[*app.ContactService](injector); err == nil {
		if err := contacts.Wait(shutdownCtx); err != nil {
			logger.Warn("pending contact mail abandoned", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// closeResources releases the connection pools once the server has stopped.
func closeResources(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	if store, err := do.Invoke[*sqlstore.Store](injector); err == nil {
		if err := store.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}
	if cfg.Cache.Enabled {
		if client, err := do.Invoke[redis.UniversalClient](injector); err == nil {
			if err := client.Close(); err != nil {
				logger.Error("redis close error", slog.Any("error", err))
			}
		}
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerStorage(injector, cfg, logger)
	registerImages(injector, cfg, logger)
	registerMail(injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)
}

func registerStorage(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sqlstore.Store, error) {
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()

		store, err := sqlstore.Open(ctx, sqlstore.Config{
			Driver:          cfg.Storage.Driver,
			DSN:             cfg.Storage.DSN,
			MaxOpenConns:    cfg.Storage.MaxOpenConns,
			MaxIdleConns:    cfg.Storage.MaxIdleConns,
			ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("database ready", slog.String("driver", cfg.Storage.Driver))
		return store, nil
	})

	do.Provide(injector, func(_ do.Injector) (redis.UniversalClient, error) {
		return redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*cache.Cache, error) {
		client := do.MustInvoke[redis.UniversalClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return cache.New(client, cfg.Cache.TTL, cfg.Cache.Prefix, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectRepository, error) {
		store := do.MustInvoke[*sqlstore.Store](i)
		if !cfg.Cache.Enabled {
			return store.Projects(), nil
		}
		return do.MustInvoke[*cache.Cache](i).Projects(store.Projects()), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SkillRepository, error) {
		store := do.MustInvoke[*sqlstore.Store](i)
		if !cfg.Cache.Enabled {
			return store.Skills(), nil
		}
		return do.MustInvoke[*cache.Cache](i).Skills(store.Skills()), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ContactRepository, error) {
		return do.MustInvoke[*sqlstore.Store](i).Contacts(), nil
	})
}

func registerImages(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (images.Backend, error) {
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()

		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return images.NewBackend(ctx, &cfg.Images, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (*images.Service, error) {
		backend := do.MustInvoke[images.Backend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return images.NewService(backend, &cfg.Images, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ImageStore, error) {
		return do.MustInvoke[*images.Service](i), nil
	})
}

func registerMail(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*resilience.Executor, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return resilience.New(&cfg.Mail.Resilience, "mail", metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (mail.Sender, error) {
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		return mail.NewSender(ctx, &cfg.Mail, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.ContactNotifier, error) {
		sender := do.MustInvoke[mail.Sender](i)
		exec := do.MustInvoke[*resilience.Executor](i)
		return mail.NewNotifier(sender, exec, &cfg.Mail, logger), nil
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		repo := do.MustInvoke[ports.ProjectRepository](i)
		store := do.MustInvoke[ports.ImageStore](i)
		return app.NewProjectService(repo, store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SkillService, error) {
		return app.NewSkillService(do.MustInvoke[ports.SkillRepository](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.ContactService, error) {
		repo := do.MustInvoke[ports.ContactRepository](i)
		notifier := do.MustInvoke[ports.ContactNotifier](i)
		return app.NewContactService(repo, notifier, cfg.Mail.SendTimeout, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ContactService, error) {
		return do.MustInvoke[*app.ContactService](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		projects := do.MustInvoke[ports.ProjectRepository](i)
		contacts := do.MustInvoke[ports.ContactRepository](i)
		return app.NewDashboardService(projects, contacts, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		urls := do.MustInvoke[*images.Service](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return adapthttp.Handlers{
			Projects:  handlers.NewProjectHandler(do.MustInvoke[ports.ProjectService](i), urls, cfg.Images.MaxBytes),
			Skills:    handlers.NewSkillHandler(do.MustInvoke[ports.SkillService](i)),
			Contacts:  handlers.NewContactHandler(do.MustInvoke[ports.ContactService](i), metrics),
			Dashboard: handlers.NewDashboardHandler(do.MustInvoke[ports.DashboardService](i), urls),
			Health:    handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		opts := adapthttp.RouterOptions{
			AdminToken:     cfg.Admin.Token,
			ContactLimiter: middleware.NewIPRateLimiter(cfg.Contact.RateLimit),
			TrustProxy:     cfg.Server.TrustProxy,
		}
		if local, ok := do.MustInvoke[images.Backend](i).(*images.LocalBackend); ok {
			opts.Uploads = local.Handler()
		}
		if cfg.Admin.Token == "" {
			logger.Warn("admin.token is empty; the admin API is disabled")
		}

		return adapthttp.NewRouter(h, opts,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.CORS(cfg.CORS.AllowedOrigins),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

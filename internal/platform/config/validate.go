package config

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/logging"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Storage.validate(),
		c.Cache.validate(),
		c.Images.validate(),
		c.Mail.validate(),
		c.Contact.RateLimit.validate("contact.rate_limit"),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	if _, err := logging.ParseLevel(l.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	var errs []error

	switch s.Driver {
	case "sqlite", "postgres":
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: sqlite, postgres; got %q", s.Driver))
	}
	if s.DSN == "" {
		errs = append(errs, errors.New("storage.dsn must not be empty"))
	}
	if s.MaxOpenConns < 0 {
		errs = append(errs, fmt.Errorf("storage.max_open_conns must be >= 0, got %d", s.MaxOpenConns))
	}

	return errors.Join(errs...)
}

func (c *CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}

	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("cache.addr must not be empty when cache is enabled"))
	}
	if c.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (i *ImagesConfig) validate() error {
	var errs []error

	switch i.Backend {
	case "local":
		if i.Dir == "" {
			errs = append(errs, errors.New("images.dir must not be empty for the local backend"))
		}
	case "minio":
		if i.MinIO.Endpoint == "" {
			errs = append(errs, errors.New("images.minio.endpoint must not be empty for the minio backend"))
		}
		if i.MinIO.Bucket == "" {
			errs = append(errs, errors.New("images.minio.bucket must not be empty for the minio backend"))
		}
		errs = append(errs, i.MinIO.Resilience.validate("images.minio.resilience"))
	default:
		errs = append(errs, fmt.Errorf("images.backend must be one of: local, minio; got %q", i.Backend))
	}
	if i.MaxBytes <= 0 {
		errs = append(errs, fmt.Errorf("images.max_bytes must be positive, got %d", i.MaxBytes))
	}
	if i.MinWidth < 0 || i.MinHeight < 0 {
		errs = append(errs, errors.New("images.min_width and images.min_height must not be negative"))
	}

	return errors.Join(errs...)
}

func (m *MailConfig) validate() error {
	var errs []error

	switch m.Driver {
	case "log":
		// No transport settings needed.
	case "smtp":
		if m.SMTP.Host == "" {
			errs = append(errs, errors.New("mail.smtp.host must not be empty for the smtp driver"))
		}
		if m.SMTP.Port < 1 || m.SMTP.Port > 65535 {
			errs = append(errs, fmt.Errorf("mail.smtp.port must be between 1 and 65535, got %d", m.SMTP.Port))
		}
	case "ses":
		if m.SES.Region == "" {
			errs = append(errs, errors.New("mail.ses.region must not be empty for the ses driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("mail.driver must be one of: log, smtp, ses; got %q", m.Driver))
	}

	if _, err := mail.ParseAddress(m.From); err != nil {
		errs = append(errs, fmt.Errorf("mail.from must be a valid address: %w", err))
	}
	if _, err := mail.ParseAddress(m.AdminEmail); err != nil {
		errs = append(errs, fmt.Errorf("mail.admin_email must be a valid address: %w", err))
	}

	if m.SendTimeout <= 0 {
		errs = append(errs, fmt.Errorf("mail.send_timeout must be positive, got %s", m.SendTimeout))
	}

	errs = append(errs, m.Resilience.validate("mail.resilience"))

	return errors.Join(errs...)
}

func (r *ResilienceConfig) validate(prefix string) error {
	var errs []error

	if r.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must not be negative", prefix))
	}
	if r.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, r.Retry.MaxAttempts))
	}
	if r.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, r.Retry.Multiplier))
	}
	if r.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, r.CircuitBreaker.MaxFailures))
	}
	errs = append(errs, r.RateLimit.validate(prefix+".rate_limit"))

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate(prefix string) error {
	var errs []error

	if r.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.requests_per_second must not be negative, got %f",
			prefix, r.RequestsPerSecond))
	}
	if r.RequestsPerSecond > 0 && r.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.burst_size must be >= 1 when limiting, got %d", prefix, r.BurstSize))
	}

	return errors.Join(errs...)
}

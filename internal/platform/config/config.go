// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Storage   StorageConfig   `koanf:"storage"`
	Cache     CacheConfig     `koanf:"cache"`
	Images    ImagesConfig    `koanf:"images"`
	Mail      MailConfig      `koanf:"mail"`
	Admin     AdminConfig     `koanf:"admin"`
	CORS      CORSConfig      `koanf:"cors"`
	Contact   ContactConfig   `koanf:"contact"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// TrustProxy makes the client IP come from X-Real-IP or X-Forwarded-For.
	// Enable only behind a reverse proxy that sets those headers.
	TrustProxy bool `koanf:"trust_proxy"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// StorageConfig selects the SQL driver and its connection pool.
type StorageConfig struct {
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// CacheConfig holds the optional Redis read cache settings.
type CacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
	Prefix   string        `koanf:"prefix"`
}

// ImagesConfig holds image upload and storage settings.
type ImagesConfig struct {
	Backend   string      `koanf:"backend"`
	Dir       string      `koanf:"dir"`
	BaseURL   string      `koanf:"base_url"`
	MaxBytes  int64       `koanf:"max_bytes"`
	MinWidth  int         `koanf:"min_width"`
	MinHeight int         `koanf:"min_height"`
	MinIO     MinIOConfig `koanf:"minio"`
}

// MinIOConfig holds S3-compatible object storage settings.
type MinIOConfig struct {
	Endpoint   string           `koanf:"endpoint"`
	Bucket     string           `koanf:"bucket"`
	AccessKey  string           `koanf:"access_key"`
	SecretKey  string           `koanf:"secret_key"`
	Region     string           `koanf:"region"`
	UseSSL     bool             `koanf:"use_ssl"`
	Resilience ResilienceConfig `koanf:"resilience"`
}

// MailConfig holds outbound email settings.
type MailConfig struct {
	Driver     string `koanf:"driver"`
	From       string `koanf:"from"`
	AdminEmail string `koanf:"admin_email"`
	SiteName   string `koanf:"site_name"`

	// SendTimeout bounds the mail sent in the background for one contact
	// submission, retries included.
	SendTimeout time.Duration `koanf:"send_timeout"`

	SMTP       SMTPConfig       `koanf:"smtp"`
	SES        SESConfig        `koanf:"ses"`
	Resilience ResilienceConfig `koanf:"resilience"`
}

// SMTPConfig holds SMTP relay settings.
type SMTPConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// SESConfig holds Amazon SES settings. Empty keys fall back to the default
// AWS credential chain.
type SESConfig struct {
	Region          string `koanf:"region"`
	Endpoint        string `koanf:"endpoint"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
}

// ResilienceConfig holds the fault tolerance policy for an outbound dependency.
type ResilienceConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// AdminConfig holds admin API settings.
type AdminConfig struct {
	Token string `koanf:"token"`
}

// CORSConfig holds cross-origin settings for the public API.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// ContactConfig holds contact form settings.
type ContactConfig struct {
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("Storage.Driver = %q, want \"sqlite\"", cfg.Storage.Driver)
	}
	if cfg.Mail.Driver != "log" {
		t.Errorf("Mail.Driver = %q, want \"log\"", cfg.Mail.Driver)
	}
	if cfg.Admin.Token == "" {
		t.Error("Admin.Token is empty, want a local token")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("CORS.AllowedOrigins = %v, want 2 origins from local.yaml", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Storage.Driver != "postgres" {
		t.Errorf("Storage.Driver = %q, want \"postgres\"", cfg.Storage.Driver)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled = false, want true for prod")
	}
	if cfg.Images.Backend != "minio" {
		t.Errorf("Images.Backend = %q, want \"minio\"", cfg.Images.Backend)
	}
	if cfg.Mail.Driver != "ses" {
		t.Errorf("Mail.Driver = %q, want \"ses\"", cfg.Mail.Driver)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Mail.Resilience.Retry.MaxAttempts != 3 {
		t.Errorf("Mail.Resilience.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Mail.Resilience.Retry.MaxAttempts)
	}
	if cfg.Mail.Resilience.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Mail.Resilience.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Mail.Resilience.CircuitBreaker.MaxFailures)
	}
	if cfg.Images.MaxBytes != 5<<20 {
		t.Errorf("Images.MaxBytes = %d, want %d (from base)", cfg.Images.MaxBytes, 5<<20)
	}
	if cfg.Contact.RateLimit.BurstSize != 3 {
		t.Errorf("Contact.RateLimit.BurstSize = %d, want 3 (from base)", cfg.Contact.RateLimit.BurstSize)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "server:\n  port: 9000\n")
	writeFile(t, dir, "test.yaml", "log:\n  level: warn\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s (default)", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" (default)", cfg.Log.Format)
	}
	if cfg.Images.MinWidth != 400 || cfg.Images.MinHeight != 300 {
		t.Errorf("Images min dimensions = %dx%d, want 400x300 (default)", cfg.Images.MinWidth, cfg.Images.MinHeight)
	}
	if cfg.Mail.SendTimeout != 90*time.Second {
		t.Errorf("Mail.SendTimeout = %v, want 90s (default)", cfg.Mail.SendTimeout)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_ADMIN_TOKEN", "from-env")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
	if cfg.Admin.Token != "from-env" {
		t.Errorf("Admin.Token = %q, want \"from-env\" (env override)", cfg.Admin.Token)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_MAIL_RESILIENCE_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Mail.Resilience.Retry.MaxAttempts != 7 {
		t.Errorf("Mail.Resilience.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Mail.Resilience.Retry.MaxAttempts)
	}
}

func TestLoad_EnvOverrideListKey(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "cors:\n  allowed_origins:\n    - http://localhost:3000\n")
	writeFile(t, dir, "test.yaml", "{}\n")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://portfolio.example.com, ,https://www.portfolio.example.com")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := []string{"https://portfolio.example.com", "https://www.portfolio.example.com"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("CORS.AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.CORS.AllowedOrigins[i] != want[i] {
			t.Errorf("CORS.AllowedOrigins[%d] = %q, want %q", i, cfg.CORS.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoad_EnvOverrideSecretWithUnderscores(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "{}\n")
	writeFile(t, dir, "test.yaml", "{}\n")
	t.Setenv("APP_IMAGES_MINIO_SECRET_KEY", "from-env-secret")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Images.MinIO.SecretKey != "from-env-secret" {
		t.Errorf("Images.MinIO.SecretKey = %q, want %q", cfg.Images.MinIO.SecretKey, "from-env-secret")
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "a/b"} {
		if _, err := config.Load(profile, config.WithConfigDir(t.TempDir())); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*config.Config) {}},
		{name: "invalid port", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "warning log level alias", mutate: func(c *config.Config) { c.Log.Level = "warning" }},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
				c.Telemetry.Endpoint = ""
			},
			wantErr: true,
		},
		{name: "unknown storage driver", mutate: func(c *config.Config) { c.Storage.Driver = "mysql" }, wantErr: true},
		{name: "empty dsn", mutate: func(c *config.Config) { c.Storage.DSN = "" }, wantErr: true},
		{
			name: "cache enabled without addr",
			mutate: func(c *config.Config) {
				c.Cache.Enabled = true
				c.Cache.Addr = ""
			},
			wantErr: true,
		},
		{name: "disabled cache ignores addr", mutate: func(c *config.Config) { c.Cache.Addr = "" }},
		{name: "unknown image backend", mutate: func(c *config.Config) { c.Images.Backend = "ftp" }, wantErr: true},
		{
			name:    "minio without endpoint",
			mutate:  func(c *config.Config) { c.Images.Backend = "minio" },
			wantErr: true,
		},
		{name: "zero max bytes", mutate: func(c *config.Config) { c.Images.MaxBytes = 0 }, wantErr: true},
		{name: "smtp without host", mutate: func(c *config.Config) { c.Mail.Driver = "smtp" }, wantErr: true},
		{name: "ses without region", mutate: func(c *config.Config) { c.Mail.Driver = "ses" }, wantErr: true},
		{name: "bad from address", mutate: func(c *config.Config) { c.Mail.From = "not an address" }, wantErr: true},
		{name: "zero mail send timeout", mutate: func(c *config.Config) { c.Mail.SendTimeout = 0 }, wantErr: true},
		{
			name:    "zero retry attempts",
			mutate:  func(c *config.Config) { c.Mail.Resilience.Retry.MaxAttempts = 0 },
			wantErr: true,
		},
		{
			name:    "rate limit without burst",
			mutate:  func(c *config.Config) { c.Contact.RateLimit.BurstSize = 0 },
			wantErr: true,
		},
		{
			name: "rate limit disabled",
			mutate: func(c *config.Config) {
				c.Contact.RateLimit.RequestsPerSecond = 0
				c.Contact.RateLimit.BurstSize = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() returned error for valid config: %v", err)
			}
		})
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Storage: config.StorageConfig{
			Driver:       "sqlite",
			DSN:          "data/portfolio.db",
			MaxOpenConns: 10,
		},
		Cache: config.CacheConfig{
			Addr: "localhost:6379",
			TTL:  5 * time.Minute,
		},
		Images: config.ImagesConfig{
			Backend:   "local",
			Dir:       "data/uploads",
			BaseURL:   "/uploads",
			MaxBytes:  5 << 20,
			MinWidth:  400,
			MinHeight: 300,
		},
		Mail: config.MailConfig{
			Driver:      "log",
			From:        "no-reply@example.com",
			AdminEmail:  "owner@example.com",
			SiteName:    "Portfolio",
			SendTimeout: 90 * time.Second,
			Resilience: config.ResilienceConfig{
				Timeout: 10 * time.Second,
				Retry: config.RetryConfig{
					MaxAttempts:     3,
					InitialInterval: 100 * time.Millisecond,
					MaxInterval:     10 * time.Second,
					Multiplier:      2.0,
				},
				CircuitBreaker: config.CircuitBreakerConfig{
					MaxFailures:   5,
					Timeout:       30 * time.Second,
					HalfOpenLimit: 1,
				},
				RateLimit: config.RateLimitConfig{RequestsPerSecond: 5, BurstSize: 5},
			},
		},
		Contact: config.ContactConfig{
			RateLimit: config.RateLimitConfig{RequestsPerSecond: 0.1, BurstSize: 3},
		},
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

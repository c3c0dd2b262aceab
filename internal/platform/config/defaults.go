package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultImageMaxBytes  = 5 << 20
	defaultImageMinWidth  = 400
	defaultImageMinHeight = 300

	defaultSMTPPort = 587

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMailRatePerSecond = 5
	defaultMailBurst         = 5

	defaultContactRatePerSecond = 0.1
	defaultContactBurst         = 3
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",
		"server.trust_proxy":     false,

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "portfolio-service",

		"storage.driver":            "sqlite",
		"storage.dsn":               "data/portfolio.db",
		"storage.max_open_conns":    defaultMaxOpenConns,
		"storage.max_idle_conns":    defaultMaxIdleConns,
		"storage.conn_max_lifetime": "30m",

		"cache.enabled":  false,
		"cache.addr":     "localhost:6379",
		"cache.password": "",
		"cache.db":       0,
		"cache.ttl":      "5m",
		"cache.prefix":   "portfolio",

		"images.backend":          "local",
		"images.dir":              "data/uploads",
		"images.base_url":         "/uploads",
		"images.max_bytes":        defaultImageMaxBytes,
		"images.min_width":        defaultImageMinWidth,
		"images.min_height":       defaultImageMinHeight,
		"images.minio.endpoint":   "",
		"images.minio.bucket":     "portfolio",
		"images.minio.access_key": "",
		"images.minio.secret_key": "",
		"images.minio.region":     "",
		"images.minio.use_ssl":    false,

		"images.minio.resilience.timeout":                         "15s",
		"images.minio.resilience.retry.max_attempts":              defaultRetryMaxAttempts,
		"images.minio.resilience.retry.initial_interval":          "100ms",
		"images.minio.resilience.retry.max_interval":              "2s",
		"images.minio.resilience.retry.multiplier":                defaultRetryMultiplier,
		"images.minio.resilience.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"images.minio.resilience.circuit_breaker.timeout":         "30s",
		"images.minio.resilience.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"images.minio.resilience.rate_limit.requests_per_second":  0,
		"images.minio.resilience.rate_limit.burst_size":           0,

		"mail.driver":                                     "log",
		"mail.from":                                       "no-reply@localhost",
		"mail.admin_email":                                "admin@localhost",
		"mail.site_name":                                  "Portfolio",
		"mail.send_timeout":                               "90s",
		"mail.smtp.host":                                  "",
		"mail.smtp.port":                                  defaultSMTPPort,
		"mail.smtp.username":                              "",
		"mail.smtp.password":                              "",
		"mail.ses.region":                                 "",
		"mail.ses.endpoint":                               "",
		"mail.ses.access_key_id":                          "",
		"mail.ses.secret_access_key":                      "",
		"mail.resilience.timeout":                         "10s",
		"mail.resilience.retry.max_attempts":              defaultRetryMaxAttempts,
		"mail.resilience.retry.initial_interval":          "200ms",
		"mail.resilience.retry.max_interval":              "5s",
		"mail.resilience.retry.multiplier":                defaultRetryMultiplier,
		"mail.resilience.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"mail.resilience.circuit_breaker.timeout":         "30s",
		"mail.resilience.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"mail.resilience.rate_limit.requests_per_second":  defaultMailRatePerSecond,
		"mail.resilience.rate_limit.burst_size":           defaultMailBurst,

		"admin.token": "",

		"cors.allowed_origins": []string{"http://localhost:3000"},

		"contact.rate_limit.requests_per_second": defaultContactRatePerSecond,
		"contact.rate_limit.burst_size":          defaultContactBurst,
	}
}

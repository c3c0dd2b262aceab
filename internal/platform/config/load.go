package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration for profile from four layers, later layers
// winning:
//
//  0. Built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_ environment variables
//
// Environment names are matched against the keys known after layer 2, so
// underscores inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT                -> server.read_timeout
//	APP_IMAGES_MINIO_SECRET_KEY            -> images.minio.secret_key
//	APP_MAIL_RESILIENCE_RETRY_MAX_ATTEMPTS -> mail.resilience.retry.max_attempts
//
// List keys such as cors.allowed_origins take a comma-separated value:
//
//	APP_CORS_ALLOWED_ORIGINS="https://a.example,https://b.example"
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// validateProfile checks that the profile name is non-empty and cannot
// escape the config directory.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// envTransform maps APP_ variables onto the keys already loaded into k.
// Unknown names fall back to replacing every underscore with a dot. Values
// for list keys are split on commas with blanks dropped.
func envTransform(k *koanf.Koanf) func(key, value string) (string, any) {
	known := make(map[string]string, len(k.Keys()))
	lists := make(map[string]bool)
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
		switch k.Get(key).(type) {
		case []string, []any:
			lists[key] = true
		}
	}

	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))

		koanfKey, ok := known[name]
		if !ok {
			return strings.ReplaceAll(name, "_", "."), value
		}
		if lists[koanfKey] {
			return koanfKey, splitList(value)
		}
		return koanfKey, value
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

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

	issuingPrefix = "client."
	backendPrefix = "ephemeral_keys.backend."
)

// backendOwnKeys are issuing client settings the key backend never inherits.
var backendOwnKeys = map[string]bool{
	"base_url":    true,
	"api_version": true,
}

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

// Load builds the service configuration, later layers winning:
//
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_* environment variables
//
// Between the file and env layers, ephemeral_keys.backend picks up every
// client setting it leaves unset (retry, breaker, rate limit, timeout), so a
// profile only spells out where the key backend differs from the issuing API.
//
// Env names are matched against the loaded keys, which keeps underscores
// inside a field name from being read as nesting:
//
//	APP_CLIENT_BASE_URL                          -> client.base_url
//	APP_CLIENT_RETRY_MAX_ATTEMPTS                -> client.retry.max_attempts
//	APP_EPHEMERAL_KEYS_FETCH_TIMEOUT             -> ephemeral_keys.fetch_timeout
//	APP_EPHEMERAL_KEYS_BACKEND_RATE_LIMIT_BURST_SIZE -> ephemeral_keys.backend.rate_limit.burst_size
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := inheritIssuingSettings(k); err != nil {
		return nil, err
	}

	if err := loadEnv(k); err != nil {
		return nil, err
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

// inheritIssuingSettings copies client.* values into ephemeral_keys.backend
// wherever the backend has no value of its own.
func inheritIssuingSettings(k *koanf.Koanf) error {
	for _, key := range k.Keys() {
		field, ok := strings.CutPrefix(key, issuingPrefix)
		if !ok || backendOwnKeys[field] {
			continue
		}
		target := backendPrefix + field
		if k.Exists(target) {
			continue
		}
		if err := k.Set(target, k.Get(key)); err != nil {
			return fmt.Errorf("inheriting %s: %w", target, err)
		}
	}
	return nil
}

// loadEnv applies APP_* overrides. Unknown names fall back to treating every
// underscore as a separator.
func loadEnv(k *koanf.Koanf) error {
	known := envKeys(k.Keys())

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if dotted, ok := known[key]; ok {
				return dotted, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// validateProfile rejects empty names and anything that could leave configDir.
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

// envKeys maps the env spelling of each dotted key (ephemeral_keys_fetch_timeout)
// back to the key itself.
func envKeys(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[strings.ReplaceAll(key, ".", "_")] = key
	}
	return out
}

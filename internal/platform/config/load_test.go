package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/config"
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
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
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

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_EphemeralKeysFromBase(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.EphemeralKeys.RefreshBuffer != 30*time.Second {
		t.Errorf("EphemeralKeys.RefreshBuffer = %v, want 30s", cfg.EphemeralKeys.RefreshBuffer)
	}
	if cfg.EphemeralKeys.Backend.BaseURL == "" {
		t.Error("EphemeralKeys.Backend.BaseURL is empty, want value from base")
	}
	if cfg.Client.APIVersion == "" {
		t.Error("Client.APIVersion is empty, want value from base")
	}
}

func TestLoad_EnvOverrideEphemeralKeyBackend(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_EPHEMERAL_KEYS_BACKEND_BASE_URL", "http://keys.test:9000")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.EphemeralKeys.Backend.BaseURL != "http://keys.test:9000" {
		t.Errorf("EphemeralKeys.Backend.BaseURL = %q, want env override", cfg.EphemeralKeys.Backend.BaseURL)
	}
}

func TestLoad_KeyBackendInheritsIssuingSettings(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	backend := cfg.EphemeralKeys.Backend
	if backend.Retry.MaxAttempts != cfg.Client.Retry.MaxAttempts {
		t.Errorf("Backend.Retry.MaxAttempts = %d, want %d from client", backend.Retry.MaxAttempts, cfg.Client.Retry.MaxAttempts)
	}
	if backend.CircuitBreaker != cfg.Client.CircuitBreaker {
		t.Errorf("Backend.CircuitBreaker = %+v, want %+v from client", backend.CircuitBreaker, cfg.Client.CircuitBreaker)
	}
	if backend.Retry.MaxInterval != time.Second {
		t.Errorf("Backend.Retry.MaxInterval = %v, want its own 1s", backend.Retry.MaxInterval)
	}
	if backend.Timeout != 5*time.Second {
		t.Errorf("Backend.Timeout = %v, want its own 5s", backend.Timeout)
	}
	if backend.BaseURL == cfg.Client.BaseURL {
		t.Errorf("Backend.BaseURL = %q, must not inherit the issuing API address", backend.BaseURL)
	}
	if backend.APIVersion != "" {
		t.Errorf("Backend.APIVersion = %q, want empty", backend.APIVersion)
	}
}

func TestLoad_EnvOverridesInheritedBackendKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_EPHEMERAL_KEYS_BACKEND_CIRCUIT_BREAKER_MAX_FAILURES", "9")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := cfg.EphemeralKeys.Backend.CircuitBreaker.MaxFailures; got != 9 {
		t.Errorf("Backend.CircuitBreaker.MaxFailures = %d, want 9 (env override)", got)
	}
	if got := cfg.Client.CircuitBreaker.MaxFailures; got == 9 {
		t.Error("Client.CircuitBreaker.MaxFailures picked up the backend override")
	}
}

func TestLoad_ProfileOverridesInheritedValue(t *testing.T) {
	dir := t.TempDir()
	base, err := os.ReadFile("../../../configs/base.yaml")
	if err != nil {
		t.Fatalf("reading base.yaml: %v", err)
	}
	writeFile(t, filepath.Join(dir, "base.yaml"), string(base))
	writeFile(t, filepath.Join(dir, "keys.yaml"), `
client:
  rate_limit:
    requests_per_second: 50
    burst_size: 10
ephemeral_keys:
  backend:
    rate_limit:
      requests_per_second: 5
`)

	cfg, err := config.Load("keys", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	rl := cfg.EphemeralKeys.Backend.RateLimit
	if rl.RequestsPerSecond != 5 {
		t.Errorf("Backend.RateLimit.RequestsPerSecond = %v, want 5 from profile", rl.RequestsPerSecond)
	}
	if rl.BurstSize != 10 {
		t.Errorf("Backend.RateLimit.BurstSize = %d, want 10 inherited from client", rl.BurstSize)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoad_PathTraversalProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"../etc", "a/b", " "} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_MissingAPIVersion(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.APIVersion = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for empty api_version")
	}
}

func TestValidate_EphemeralKeys(t *testing.T) {
	t.Parallel()

	t.Run("non-positive fetch timeout", func(t *testing.T) {
		t.Parallel()
		cfg := validBaseConfig()
		cfg.EphemeralKeys.FetchTimeout = 0
		if err := cfg.Validate(); err == nil {
			t.Fatal("Validate() returned nil, want error for fetch_timeout=0")
		}
	})

	t.Run("backend without base url", func(t *testing.T) {
		t.Parallel()
		cfg := validBaseConfig()
		cfg.EphemeralKeys.Backend.BaseURL = ""
		err := cfg.Validate()
		if err == nil {
			t.Fatal("Validate() returned nil, want error for empty backend base_url")
		}
		if !strings.Contains(err.Error(), "ephemeral_keys.backend.base_url") {
			t.Errorf("error = %q, want it to name ephemeral_keys.backend.base_url", err)
		}
	})

	t.Run("rate limit without burst", func(t *testing.T) {
		t.Parallel()
		cfg := validBaseConfig()
		cfg.EphemeralKeys.Backend.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5}
		if err := cfg.Validate(); err == nil {
			t.Fatal("Validate() returned nil, want error for burst_size=0")
		}
	})
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validClientConfig returns a ClientConfig with all fields set to valid values.
func validClientConfig(baseURL string) config.ClientConfig {
	return config.ClientConfig{
		BaseURL:    baseURL,
		APIVersion: "2019-05-16",
		Timeout:    30 * time.Second,
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
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: validClientConfig("http://localhost:12111"),
		EphemeralKeys: config.EphemeralKeysConfig{
			Backend:       validClientConfig("http://localhost:8081"),
			RefreshBuffer: 30 * time.Second,
			FetchTimeout:  10 * time.Second,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}

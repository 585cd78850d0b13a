// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
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

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/issuing-pin-service/internal/adapters/http"
	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/clients/ephemeralkey"
	"github.com/jsamuelsen11/issuing-pin-service/internal/app/dispatch"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/config"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/health"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/logging"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/issuing-pin-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
)

// Named services. Both outbound clients share the *httpclient.Client type.
const (
	issuingClientName = "client." + acl.IssuingServiceName
	backendClientName = "client." + ephemeralkey.BackendServiceName
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

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

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Readiness needs both the issuing API and the key backend.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.IssuingClient](injector))
	registry.Register(do.MustInvoke[*ephemeralkey.HTTPProvider](injector))

	logger.Info("pin service wired",
		slog.String("profile", profile),
		slog.String("issuing_api", cfg.Client.BaseURL),
		slog.String("api_version", cfg.Client.APIVersion),
		slog.String("ephemeral_key_backend", cfg.EphemeralKeys.Backend.BaseURL),
	)

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

	// Graceful shutdown: drain in-flight PIN requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
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
	// Outbound clients.
	do.ProvideNamed(injector, issuingClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, acl.IssuingServiceName, metrics, logger,
			httpclient.WithDefaultHeader("Stripe-Version", cfg.Client.APIVersion),
		), nil
	})

	do.ProvideNamed(injector, backendClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.EphemeralKeys.Backend, ephemeralkey.BackendServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.IssuingClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, issuingClientName)
		return acl.NewIssuingClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*ephemeralkey.HTTPProvider, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, backendClientName)
		return ephemeralkey.NewHTTPProvider(client, logger), nil
	})

	// Credentials and dispatch.
	do.Provide(injector, func(i do.Injector) (ports.CredentialManager, error) {
		provider := do.MustInvoke[*ephemeralkey.HTTPProvider](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return ephemeralkey.NewManager(provider, &cfg.EphemeralKeys, cfg.Client.APIVersion, logger,
			ephemeralkey.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PinService, error) {
		credentials := do.MustInvoke[ports.CredentialManager](i)
		executor := do.MustInvoke[*acl.IssuingClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return dispatch.New(credentials, executor, logger, dispatch.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	// Inbound HTTP.
	do.Provide(injector, func(i do.Injector) (*handlers.PinHandler, error) {
		svc := do.MustInvoke[ports.PinService](i)
		return handlers.NewPinHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		pinH := do.MustInvoke[*handlers.PinHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(pinH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

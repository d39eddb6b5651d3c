package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emperror.dev/errors"
	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bnema/forcedeck/internal/adapters/in/http/api"
	"github.com/bnema/forcedeck/internal/adapters/in/http/middleware"
	"github.com/bnema/forcedeck/internal/adapters/out/ratelimit"
	"github.com/bnema/forcedeck/internal/adapters/out/telemetry"
	"github.com/bnema/forcedeck/internal/boundaries/out"
	"github.com/bnema/forcedeck/internal/logging"
)

const (
	serviceName       = "forcedeck"
	rateLimitIdle     = 10 * time.Minute
	rateLimitSweep    = time.Minute
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Run starts the API server and blocks until ctx is cancelled or the process
// receives SIGINT or SIGTERM.
func Run(ctx context.Context, configPath, version string) error {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return err
	}

	log, cleanup, err := logging.Setup(cfg.Logging)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(zerowrap.WithCtx(ctx, log))
	defer cancel()

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldComponent, "server").
		Str("version", version).
		Msg("starting forcedeck")

	_, shutdownTelemetry, err := telemetry.NewProvider(ctx, cfg.Telemetry, serviceName, version)
	if err != nil {
		return errors.WithMessage(err, "failed to initialize telemetry")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownTelemetry(flushCtx)
	}()

	svc := createServices(cfg, version, log)
	defer svc.close()

	limiter, err := createRateLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}

	return runServer(ctx, cfg, createHTTPHandler(svc, cfg, limiter, log), log)
}

// createRateLimiter returns nil when rate limiting is disabled. The janitor
// stops with ctx.
func createRateLimiter(ctx context.Context, cfg Config, log zerowrap.Logger) (out.RateLimiter, error) {
	if !cfg.API.RateLimit.Enabled {
		return nil, nil
	}

	store, err := ratelimit.NewStore(cfg.API.RateLimit.Backend, cfg.API.RateLimit.RPS, cfg.API.RateLimit.Burst, log)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create rate limiter")
	}
	go store.RunJanitor(ctx, rateLimitSweep, rateLimitIdle)
	return store, nil
}

// createHTTPHandler builds the API handler wrapped in the middleware chain.
func createHTTPHandler(svc *services, cfg Config, limiter out.RateLimiter, log zerowrap.Logger) http.Handler {
	apiHandler := api.NewHandler(svc.deploySvc, svc.orgSvc, api.Config{
		InstanceURL: cfg.Salesforce.InstanceURL,
		AccessToken: cfg.Salesforce.AccessToken,
	}, log)

	trusted := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	handler := middleware.Chain(
		middleware.PanicRecovery(log),
		middleware.RequestLogger(log, trusted),
		middleware.CORS(cfg.Server.CORSOrigins),
		middleware.RateLimit(limiter, trusted, log),
		middleware.MaxBodySize(cfg.Server.MaxBodyBytes),
	)(apiHandler)

	if cfg.Telemetry.Enabled && cfg.Telemetry.Traces {
		handler = otelhttp.NewHandler(handler, serviceName)
	}
	return handler
}

// runServer serves handler until shutdown.
func runServer(ctx context.Context, cfg Config, handler http.Handler, log zerowrap.Logger) error {
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}

	// WriteTimeout must outlast a full deploy poll plus the create calls.
	writeTimeout := cfg.Deploy.PollInterval*time.Duration(cfg.Deploy.PollMaxAttempts) + 4*cfg.Salesforce.RequestTimeout
	if writeTimeout < time.Minute {
		writeTimeout = time.Minute
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Str(zerowrap.FieldComponent, "server").
			Int("port", port).
			Msg("API server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-ctx.Done():
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Str(zerowrap.FieldComponent, "server").
			Msg("context cancelled, shutting down")
	case sig := <-quit:
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Str(zerowrap.FieldComponent, "server").
			Str("signal", sig.String()).
			Msg("received shutdown signal")
	case err := <-errCh:
		return errors.Wrap(err, "API server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("API server shutdown error")
	}

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldComponent, "server").
		Msg("forcedeck shutdown complete")
	return nil
}

// Package telemetry wires OpenTelemetry for forcedeck: OTLP/HTTP exporters
// for traces and metrics, and the deploy metric instruments.
package telemetry

import (
	"context"
	"net/url"
	"strings"

	"emperror.dev/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config holds telemetry configuration.
type Config struct {
	Enabled         bool    `mapstructure:"enabled"`
	Endpoint        string  `mapstructure:"endpoint"`          // OTLP HTTP endpoint, e.g. "http://localhost:4318"
	AuthToken       string  `mapstructure:"auth_token"`        // base64 user:pass for Basic auth
	Traces          bool    `mapstructure:"traces"`            // export deploy and HTTP spans
	Metrics         bool    `mapstructure:"metrics"`           // export deploy metrics
	TraceSampleRate float64 `mapstructure:"trace_sample_rate"` // 0.0-1.0
}

// Provider holds the installed SDK providers; both are nil when disabled.
type Provider struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
}

type exporterTarget struct {
	host     string
	basePath string
	insecure bool
	headers  map[string]string
}

// NewProvider installs global trace and meter providers as configured.
// The returned shutdown flushes exporters and must be called on exit.
func NewProvider(ctx context.Context, cfg Config, serviceName, version string) (*Provider, func(context.Context), error) {
	noop := func(context.Context) {}

	if !cfg.Enabled || cfg.Endpoint == "" {
		return &Provider{}, noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
		resource.WithHost(),
	)
	if err != nil {
		return nil, noop, errors.Wrap(err, "create resource")
	}

	target, err := parseTarget(cfg)
	if err != nil {
		return nil, noop, err
	}

	var shutdowns []func(context.Context) error
	p := &Provider{}

	if cfg.Traces {
		tp, err := newTracerProvider(ctx, target, cfg.TraceSampleRate, res)
		if err != nil {
			return nil, noop, err
		}
		otel.SetTracerProvider(tp)
		p.TracerProvider = tp
		shutdowns = append(shutdowns, tp.Shutdown)
	}

	if cfg.Metrics {
		mp, err := newMeterProvider(ctx, target, res)
		if err != nil {
			return nil, noop, err
		}
		otel.SetMeterProvider(mp)
		p.MeterProvider = mp
		shutdowns = append(shutdowns, mp.Shutdown)
	}

	shutdown := func(ctx context.Context) {
		for _, fn := range shutdowns {
			_ = fn(ctx)
		}
	}
	return p, shutdown, nil
}

func parseTarget(cfg Config) (*exporterTarget, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "parse telemetry endpoint")
	}
	if u.Host == "" {
		return nil, errors.Errorf("telemetry endpoint %q has no host", cfg.Endpoint)
	}

	headers := map[string]string{}
	if cfg.AuthToken != "" {
		headers["Authorization"] = "Basic " + cfg.AuthToken
	}

	return &exporterTarget{
		host:     u.Host,
		basePath: strings.TrimSuffix(u.Path, "/"),
		insecure: u.Scheme == "http",
		headers:  headers,
	}, nil
}

// sampler maps a rate to a sampler: 0 never, (0,1) ratio, >= 1 always.
func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate <= 0:
		return sdktrace.NeverSample()
	case rate < 1:
		return sdktrace.TraceIDRatioBased(rate)
	default:
		return sdktrace.AlwaysSample()
	}
}

func newTracerProvider(ctx context.Context, target *exporterTarget, rate float64, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(target.host),
		otlptracehttp.WithHeaders(target.headers),
	}
	if target.basePath != "" {
		opts = append(opts, otlptracehttp.WithURLPath(target.basePath+"/v1/traces"))
	}
	if target.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create trace exporter")
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(rate)),
	), nil
}

func newMeterProvider(ctx context.Context, target *exporterTarget, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(target.host),
		otlpmetrichttp.WithHeaders(target.headers),
	}
	if target.basePath != "" {
		opts = append(opts, otlpmetrichttp.WithURLPath(target.basePath+"/v1/metrics"))
	}
	if target.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create metric exporter")
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	), nil
}

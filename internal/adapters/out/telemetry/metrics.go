package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/forcedeck/internal/boundaries/out"
	"github.com/bnema/forcedeck/internal/domain"
)

const meterName = "forcedeck"

var _ out.DeployMetrics = (*Metrics)(nil)

// Metrics holds the forcedeck OTel instruments.
type Metrics struct {
	DeployTotal    metric.Int64Counter
	DeployErrors   metric.Int64Counter
	DeployDuration metric.Float64Histogram
	PollAttempts   metric.Int64Histogram
}

// NewMetrics creates the instruments on the global MeterProvider. They are
// noops until a provider is installed by NewProvider.
func NewMetrics() (*Metrics, error) {
	return newMetrics(otel.Meter(meterName))
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	if m.DeployTotal, err = meter.Int64Counter("forcedeck.deploy.total",
		metric.WithDescription("Apex class deployments that passed validation")); err != nil {
		return nil, err
	}
	if m.DeployErrors, err = meter.Int64Counter("forcedeck.deploy.errors",
		metric.WithDescription("Failed Apex class deployments, by phase")); err != nil {
		return nil, err
	}
	if m.DeployDuration, err = meter.Float64Histogram("forcedeck.deploy.duration_seconds",
		metric.WithDescription("Deploy duration in seconds, polling included"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(1, 2, 5, 10, 20, 30, 45, 60)); err != nil {
		return nil, err
	}
	if m.PollAttempts, err = meter.Int64Histogram("forcedeck.deploy.poll_attempts",
		metric.WithDescription("Status checks performed per deployment"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 5, 8, 10, 15)); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordDeploy implements out.DeployMetrics.
func (m *Metrics) RecordDeploy(ctx context.Context, phase domain.DeployPhase, success bool, attempts int, elapsed time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	m.DeployTotal.Add(ctx, 1, attrs)
	m.DeployDuration.Record(ctx, elapsed.Seconds(), attrs)
	if attempts > 0 {
		m.PollAttempts.Record(ctx, int64(attempts), attrs)
	}
	if !success {
		m.DeployErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("phase", string(phase))))
	}
}

// Package deploy implements the Apex class deployment use case: stage a new
// class body in a fresh metadata container, ask Salesforce to compile it,
// wait for the verdict and translate it into a single result.
package deploy

import (
	"context"
	"strconv"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/forcedeck/internal/boundaries/in"
	"github.com/bnema/forcedeck/internal/boundaries/out"
	"github.com/bnema/forcedeck/internal/domain"
	"github.com/bnema/forcedeck/internal/logging"
)

var _ in.DeployService = (*Service)(nil)

var tracer = otel.Tracer("github.com/bnema/forcedeck/internal/usecase/deploy")

// Config holds the deploy tuning knobs.
type Config struct {
	PollInterval     time.Duration
	PollMaxAttempts  int
	CleanupContainer bool
}

// Service implements in.DeployService.
type Service struct {
	tooling out.ToolingClient
	metrics out.DeployMetrics
	poller  *Poller
	cleanup bool
	now     func() time.Time
	log     zerowrap.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithPoller replaces the poller built from Config.
func WithPoller(p *Poller) Option {
	return func(s *Service) {
		s.poller = p
	}
}

// WithClock sets the time source used for container names.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a deploy service. metrics may be nil.
func NewService(tooling out.ToolingClient, metrics out.DeployMetrics, cfg Config, log zerowrap.Logger, opts ...Option) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	s := &Service{
		tooling: tooling,
		metrics: metrics,
		cleanup: cfg.CleanupContainer,
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.poller == nil {
		s.poller = NewPoller(tooling, WithInterval(cfg.PollInterval), WithMaxAttempts(cfg.PollMaxAttempts))
	}
	return s
}

// DeployClassUpdate runs the four-step container deployment for one class.
func (s *Service) DeployClassUpdate(ctx context.Context, classID, body string, creds domain.Credentials) (*domain.DeploymentResult, error) {
	ctx = zerowrap.CtxWithFields(logging.WithFallback(ctx, s.log), map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "DeployClassUpdate",
		zerowrap.FieldEntityID: classID,
	})
	log := zerowrap.FromCtx(ctx)

	if verr := validateInput(classID, body, creds); verr != nil {
		log.Warn().Interface("fields", verr.Fields).Msg("deploy request rejected")
		return nil, verr
	}

	ctx, span := tracer.Start(ctx, "deploy.DeployClassUpdate",
		trace.WithAttributes(attribute.String("apex.class_id", classID)))
	defer span.End()

	start := time.Now()
	result, err := s.deploy(ctx, classID, body, creds)
	s.record(ctx, result, err, time.Since(start))

	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error().Err(err).Msg("class deployment could not start")
	case result.Success:
		span.SetAttributes(attribute.Int("deploy.poll_attempts", result.Attempts))
		log.Info().Int("attempts", result.Attempts).Msg("class deployed")
	default:
		span.SetAttributes(
			attribute.Int("deploy.poll_attempts", result.Attempts),
			attribute.String("deploy.status", string(result.Status)),
		)
		span.SetStatus(codes.Error, result.ErrorMessage)
		log.Warn().
			Str(zerowrap.FieldStatus, string(result.Status)).
			Bool("timed_out", result.TimedOut).
			Str("error_msg", result.ErrorMessage).
			Msg("class deployment failed")
	}
	return result, err
}

func (s *Service) deploy(ctx context.Context, classID, body string, creds domain.Credentials) (*domain.DeploymentResult, error) {
	log := zerowrap.FromCtx(ctx)

	containerID, err := s.create(ctx, creds, domain.SObjectMetadataContainer, map[string]any{
		"Name": s.containerName(),
	})
	if err != nil {
		return nil, newDeployError(domain.PhaseContainerCreation, err)
	}
	log.Debug().Str("container_id", containerID).Msg("metadata container created")

	memberID, err := s.create(ctx, creds, domain.SObjectApexClassMember, map[string]any{
		"ContentEntityId":     classID,
		"Body":                body,
		"MetadataContainerId": containerID,
	})
	if err != nil {
		s.deleteContainer(ctx, creds, containerID)
		return nil, newDeployError(domain.PhaseClassMemberCreation, err)
	}
	log.Debug().Str("member_id", memberID).Msg("class member staged")

	requestID, err := s.create(ctx, creds, domain.SObjectContainerAsyncRequest, map[string]any{
		"MetadataContainerId": containerID,
		"IsCheckOnly":         false,
	})
	if err != nil {
		s.deleteContainer(ctx, creds, containerID)
		return nil, newDeployError(domain.PhaseDeploymentRequest, err)
	}
	log.Debug().Str("async_request_id", requestID).Msg("deploy request submitted")

	pollCtx, span := tracer.Start(ctx, "deploy.poll")
	poll := s.poller.PollUntilTerminal(pollCtx, requestID, creds)
	span.SetAttributes(attribute.Int("deploy.poll_attempts", poll.Attempts), attribute.Bool("deploy.timed_out", poll.TimedOut))
	span.End()
	result := Translate(ctx, poll)

	// A timed out job may still be running against the container.
	if !poll.TimedOut {
		s.deleteContainer(ctx, creds, containerID)
	}
	return result, nil
}

func (s *Service) create(ctx context.Context, creds domain.Credentials, sobject string, fields map[string]any) (string, error) {
	ctx, span := tracer.Start(ctx, "deploy.create "+sobject)
	defer span.End()

	id, err := s.tooling.CreateToolingRecord(ctx, creds, sobject, fields)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
	}
	return id, err
}

// containerName must stay within the 32 characters Salesforce allows for
// MetadataContainer.Name and be unique across concurrent deploys.
func (s *Service) containerName() string {
	millis := strconv.FormatInt(s.now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return "ApexClassUpdate_" + millis + "_" + suffix
}

func (s *Service) deleteContainer(ctx context.Context, creds domain.Credentials, containerID string) {
	if !s.cleanup {
		return
	}
	// Runs even when the request context is already cancelled.
	cleanupCtx := context.WithoutCancel(ctx)
	if err := s.tooling.DeleteToolingRecord(cleanupCtx, creds, domain.SObjectMetadataContainer, containerID); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str("container_id", containerID).Msg("failed to delete metadata container")
	}
}

func (s *Service) record(ctx context.Context, result *domain.DeploymentResult, err error, elapsed time.Duration) {
	var (
		phase    domain.DeployPhase
		success  bool
		attempts int
	)
	var deployErr *domain.DeployError
	switch {
	case errors.As(err, &deployErr):
		phase = deployErr.Phase
	case result != nil:
		phase = result.Phase
		success = result.Success
		attempts = result.Attempts
	}
	s.metrics.RecordDeploy(ctx, phase, success, attempts, elapsed)
}

func validateInput(classID, body string, creds domain.Credentials) *domain.ValidationError {
	fields := domain.CheckCredentials(creds)
	fields["classId"] = domain.FieldPresent
	fields["classBody"] = domain.FieldPresent
	if strings.TrimSpace(classID) == "" {
		fields["classId"] = domain.FieldMissing
	}
	if strings.TrimSpace(body) == "" {
		fields["classBody"] = domain.FieldMissing
	}
	return domain.NewValidationError("missing required fields", fields)
}

func newDeployError(phase domain.DeployPhase, err error) *domain.DeployError {
	deployErr := &domain.DeployError{
		Phase: phase,
		Kind:  domain.GatewayTransport,
		Err:   err,
	}
	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) {
		deployErr.Kind = gwErr.Kind
		deployErr.StatusCode = gwErr.StatusCode
		deployErr.Status = gwErr.Status
		if gwErr.Kind == domain.GatewayHTTP {
			details := domain.ParseErrorBody(gwErr.Body)
			deployErr.Details = &details
		}
	}
	return deployErr
}

type noopMetrics struct{}

func (noopMetrics) RecordDeploy(context.Context, domain.DeployPhase, bool, int, time.Duration) {}

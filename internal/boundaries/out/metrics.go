package out

import (
	"context"
	"time"

	"github.com/bnema/forcedeck/internal/domain"
)

// DeployMetrics records the outcome of class deployments.
type DeployMetrics interface {
	// RecordDeploy is called exactly once per DeployClassUpdate call that got
	// past input validation. phase is empty on success.
	RecordDeploy(ctx context.Context, phase domain.DeployPhase, success bool, attempts int, elapsed time.Duration)
}

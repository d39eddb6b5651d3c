// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/forcedeck/internal/domain"
)

// DeployService replaces the body of an existing Apex class.
type DeployService interface {
	// DeployClassUpdate runs the container deployment workflow for one class.
	//
	// A compile or deploy failure, or a poll timeout, is reported through the
	// returned result with Success=false. An error is returned only when the
	// workflow could not run: *domain.ValidationError before any call was made,
	// or *domain.DeployError when one of the create steps failed.
	DeployClassUpdate(ctx context.Context, classID, body string, creds domain.Credentials) (*domain.DeploymentResult, error)
}

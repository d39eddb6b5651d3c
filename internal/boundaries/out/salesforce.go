// Package out defines output ports (interfaces) for driven adapters.
// Use cases depend on these contracts; adapters under internal/adapters/out
// implement them.
package out

import (
	"context"

	"github.com/bnema/forcedeck/internal/domain"
)

// ToolingClient is the slice of the Salesforce Tooling API used by the
// deployment workflow. Every call is authenticated with the given credentials
// and fails with a *domain.GatewayError.
type ToolingClient interface {
	// CreateToolingRecord POSTs a new sObject and returns its id.
	CreateToolingRecord(ctx context.Context, creds domain.Credentials, sobject string, fields map[string]any) (string, error)

	// DeleteToolingRecord removes an sObject by id.
	DeleteToolingRecord(ctx context.Context, creds domain.Credentials, sobject, id string) error

	// ToolingQuery runs SOQL against the tooling query endpoint and decodes
	// the response envelope into result.
	ToolingQuery(ctx context.Context, creds domain.Credentials, soql string, result any) error
}

// RestClient is the slice of the Salesforce data REST API used by the
// read-only dashboard endpoints.
type RestClient interface {
	// Query runs SOQL against the data query endpoint.
	Query(ctx context.Context, creds domain.Credentials, soql string, result any) error

	// Get fetches a path relative to /services/data/v{version}/.
	Get(ctx context.Context, creds domain.Credentials, path string, result any) error

	// Post sends body to a path relative to /services/data/v{version}/.
	Post(ctx context.Context, creds domain.Credentials, path string, body, result any) error
}

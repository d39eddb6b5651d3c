package in

import (
	"context"

	"github.com/bnema/forcedeck/internal/domain"
)

// OrgService exposes read-mostly views of an org for the dashboard.
type OrgService interface {
	// ListApexClasses returns up to 100 classes ordered by name, without bodies.
	ListApexClasses(ctx context.Context, creds domain.Credentials) ([]domain.ApexClass, int, error)

	// GetApexClass returns a class with its body, or domain.ErrApexClassMissing.
	GetApexClass(ctx context.Context, creds domain.Credentials, name string) (*domain.ApexClass, error)

	// ListActiveUsers returns active users ordered by last name.
	ListActiveUsers(ctx context.Context, creds domain.Credentials) ([]domain.User, int, error)

	// LoginHistory returns the most recent logins, newest first.
	LoginHistory(ctx context.Context, creds domain.Credentials, limit int) ([]domain.LoginHistory, error)

	// ChatterFeed returns feed items, newest first.
	ChatterFeed(ctx context.Context, creds domain.Credentials) ([]domain.FeedItem, error)

	// PostChatter creates a text feed item and returns Salesforce's response verbatim.
	PostChatter(ctx context.Context, creds domain.Credentials, post domain.ChatterPost) (map[string]any, error)

	// EmailTemplates returns the templates of a folder.
	EmailTemplates(ctx context.Context, creds domain.Credentials, folder string) ([]domain.EmailTemplate, error)

	// Limits returns the org limits document.
	Limits(ctx context.Context, creds domain.Credentials) (map[string]any, error)
}

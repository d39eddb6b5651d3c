// Package org implements the read-mostly org views used by the dashboard:
// Apex classes, users, login history, Chatter, email templates and limits.
package org

import (
	"context"
	"fmt"
	"strings"

	"emperror.dev/errors"
	"github.com/bnema/zerowrap"

	"github.com/bnema/forcedeck/internal/boundaries/in"
	"github.com/bnema/forcedeck/internal/boundaries/out"
	"github.com/bnema/forcedeck/internal/domain"
	"github.com/bnema/forcedeck/internal/logging"
)

const (
	// DefaultLoginHistoryLimit applies when the caller does not ask for a size.
	DefaultLoginHistoryLimit = 10
	// MaxLoginHistoryLimit caps the LIMIT clause.
	MaxLoginHistoryLimit = 200
	// DefaultTemplateFolder is used when no folder name is given.
	DefaultTemplateFolder = "public"

	apexClassFields = "Id, Name, ApiVersion, Status, NamespacePrefix, LengthWithoutComments, BodyCrc, IsValid, CreatedDate, LastModifiedDate"

	listApexClassesQuery = "SELECT " + apexClassFields + " FROM ApexClass ORDER BY Name ASC LIMIT 100"
	getApexClassQuery    = "SELECT " + apexClassFields + ", Body FROM ApexClass WHERE Name = '%s' LIMIT 1"

	activeUsersQuery = "SELECT Id, Name, Username, Email, Alias, FirstName, LastName, Title, Department, " +
		"Profile.Name, UserRole.Name, ManagerId, Manager.Name, CreatedDate, LastLoginDate, IsActive, " +
		"TimeZoneSidKey, LocaleSidKey, EmailEncodingKey, LanguageLocaleKey, UserType, UserRoleId " +
		"FROM User WHERE IsActive = true ORDER BY LastName"

	loginHistoryQuery = "SELECT Id, UserId, LoginTime, SourceIp, LoginType, Status, Browser, LoginUrl " +
		"FROM LoginHistory ORDER BY LoginTime DESC LIMIT %d"

	feedItemsQuery = "SELECT Id, Body, CreatedBy.Name, CreatedDate, BestCommentId, CommentCount, Title, Type, Status, LinkUrl, LikeCount " +
		"FROM FeedItem ORDER BY CreatedDate DESC"

	emailTemplatesQuery = "SELECT Id, Name, Subject, HtmlValue, FolderId FROM EmailTemplate WHERE FolderName = '%s' ORDER BY Name ASC"
)

var _ in.OrgService = (*Service)(nil)

// Service implements in.OrgService on top of the Salesforce gateway.
type Service struct {
	tooling out.ToolingClient
	rest    out.RestClient
	log     zerowrap.Logger
}

// NewService creates a new org service.
func NewService(tooling out.ToolingClient, rest out.RestClient, log zerowrap.Logger) *Service {
	return &Service{
		tooling: tooling,
		rest:    rest,
		log:     log,
	}
}

func (s *Service) ctx(ctx context.Context, useCase string) context.Context {
	return zerowrap.CtxWithFields(logging.WithFallback(ctx, s.log), map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: useCase,
	})
}

// ListApexClasses returns up to 100 classes ordered by name, without bodies.
func (s *Service) ListApexClasses(ctx context.Context, creds domain.Credentials) ([]domain.ApexClass, int, error) {
	ctx = s.ctx(ctx, "ListApexClasses")

	var page domain.QueryResult[apexClassRecord]
	if err := s.tooling.ToolingQuery(ctx, creds, listApexClassesQuery, &page); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Msg("failed to list apex classes")
		return nil, 0, errors.WithMessage(err, "list apex classes")
	}

	classes := make([]domain.ApexClass, 0, len(page.Records))
	for _, rec := range page.Records {
		classes = append(classes, rec.toDomain(false))
	}
	return classes, page.TotalSize, nil
}

// GetApexClass returns a class with its body, or domain.ErrApexClassMissing.
func (s *Service) GetApexClass(ctx context.Context, creds domain.Credentials, name string) (*domain.ApexClass, error) {
	ctx = s.ctx(ctx, "GetApexClass")
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("missing required fields", map[string]string{"className": domain.FieldMissing})
	}

	var page domain.QueryResult[apexClassRecord]
	soql := fmt.Sprintf(getApexClassQuery, domain.EscapeSOQL(name))
	if err := s.tooling.ToolingQuery(ctx, creds, soql, &page); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str("class", name).Msg("failed to fetch apex class")
		return nil, errors.WithMessagef(err, "get apex class %q", name)
	}
	if len(page.Records) == 0 {
		return nil, errors.WithStack(domain.ErrApexClassMissing)
	}

	class := page.Records[0].toDomain(true)
	return &class, nil
}

// ListActiveUsers returns active users ordered by last name.
func (s *Service) ListActiveUsers(ctx context.Context, creds domain.Credentials) ([]domain.User, int, error) {
	ctx = s.ctx(ctx, "ListActiveUsers")

	var page domain.QueryResult[userRecord]
	if err := s.rest.Query(ctx, creds, activeUsersQuery, &page); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Msg("failed to list users")
		return nil, 0, errors.WithMessage(err, "list users")
	}

	users := make([]domain.User, 0, len(page.Records))
	for _, rec := range page.Records {
		users = append(users, rec.toDomain())
	}
	return users, page.TotalSize, nil
}

// LoginHistory returns the most recent logins, newest first. limit is
// clamped to [1, MaxLoginHistoryLimit]; zero or less means the default.
func (s *Service) LoginHistory(ctx context.Context, creds domain.Credentials, limit int) ([]domain.LoginHistory, error) {
	ctx = s.ctx(ctx, "LoginHistory")

	switch {
	case limit <= 0:
		limit = DefaultLoginHistoryLimit
	case limit > MaxLoginHistoryLimit:
		limit = MaxLoginHistoryLimit
	}

	var page domain.QueryResult[domain.LoginHistory]
	if err := s.rest.Query(ctx, creds, fmt.Sprintf(loginHistoryQuery, limit), &page); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Msg("failed to fetch login history")
		return nil, errors.WithMessage(err, "login history")
	}
	return nonNil(page.Records), nil
}

// ChatterFeed returns feed items, newest first.
func (s *Service) ChatterFeed(ctx context.Context, creds domain.Credentials) ([]domain.FeedItem, error) {
	ctx = s.ctx(ctx, "ChatterFeed")

	var page domain.QueryResult[domain.FeedItem]
	if err := s.rest.Query(ctx, creds, feedItemsQuery, &page); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Msg("failed to fetch chatter feed")
		return nil, errors.WithMessage(err, "chatter feed")
	}
	return nonNil(page.Records), nil
}

// PostChatter creates a text feed item and returns Salesforce's response verbatim.
func (s *Service) PostChatter(ctx context.Context, creds domain.Credentials, post domain.ChatterPost) (map[string]any, error) {
	ctx = s.ctx(ctx, "PostChatter")
	if strings.TrimSpace(post.Text) == "" {
		return nil, domain.NewValidationError("missing required fields", map[string]string{"postText": domain.FieldMissing})
	}

	payload := map[string]any{
		"feedElementType": "FeedItem",
		"body": map[string]any{
			"messageSegments": []map[string]string{
				{"type": "Text", "text": post.Text},
			},
		},
	}
	if post.SubjectID != "" {
		payload["subjectId"] = post.SubjectID
	} else {
		payload["subjectId"] = "me"
	}

	var created map[string]any
	if err := s.rest.Post(ctx, creds, "chatter/feed-elements", payload, &created); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Msg("failed to create chatter post")
		return nil, errors.WithMessage(err, "create chatter post")
	}
	log := zerowrap.FromCtx(ctx)
	log.Info().Interface("id", created["id"]).Msg("chatter post created")
	return created, nil
}

// EmailTemplates returns the templates of a folder, DefaultTemplateFolder when empty.
func (s *Service) EmailTemplates(ctx context.Context, creds domain.Credentials, folder string) ([]domain.EmailTemplate, error) {
	ctx = s.ctx(ctx, "EmailTemplates")
	if strings.TrimSpace(folder) == "" {
		folder = DefaultTemplateFolder
	}

	var page domain.QueryResult[emailTemplateRecord]
	if err := s.rest.Query(ctx, creds, fmt.Sprintf(emailTemplatesQuery, domain.EscapeSOQL(folder)), &page); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str("folder", folder).Msg("failed to fetch email templates")
		return nil, errors.WithMessage(err, "email templates")
	}

	templates := make([]domain.EmailTemplate, 0, len(page.Records))
	for _, rec := range page.Records {
		templates = append(templates, domain.EmailTemplate{
			ID:          rec.ID,
			Name:        rec.Name,
			Subject:     rec.Subject,
			HTMLContent: rec.HTMLValue,
			FolderID:    rec.FolderID,
		})
	}
	return templates, nil
}

// Limits returns the org limits document.
func (s *Service) Limits(ctx context.Context, creds domain.Credentials) (map[string]any, error) {
	ctx = s.ctx(ctx, "Limits")

	var limits map[string]any
	if err := s.rest.Get(ctx, creds, "limits", &limits); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Msg("failed to fetch org limits")
		return nil, errors.WithMessage(err, "org limits")
	}
	return limits, nil
}

func nonNil[T any](records []T) []T {
	if records == nil {
		return []T{}
	}
	return records
}

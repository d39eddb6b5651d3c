package dto

import "github.com/bnema/forcedeck/internal/domain"

const (
	ProviderToolingAPI = "salesforce-tooling-api"
	ProviderRESTAPI    = "salesforce-api"
)

// ApexClassRequest is the body of POST /api/apexClass.
type ApexClassRequest struct {
	AuthenticatedRequest
	ClassName string `json:"className"`
}

// LoginHistoryRequest is the body of POST /api/loginHistory.
type LoginHistoryRequest struct {
	AuthenticatedRequest
	Limit int `json:"limit,omitempty"`
}

// ChatterPostRequest is the body of PUT /api/salesforceChatter.
type ChatterPostRequest struct {
	AuthenticatedRequest
	PostText  string `json:"postText"`
	SubjectID string `json:"subjectId,omitempty"`
}

// ApexClassesResponse lists classes.
type ApexClassesResponse struct {
	Success   bool               `json:"success"`
	Classes   []domain.ApexClass `json:"classes"`
	TotalSize int                `json:"totalSize"`
	Provider  string             `json:"provider"`
	Timestamp string             `json:"timestamp"`
}

// ApexClassResponse carries a single class with its body.
type ApexClassResponse struct {
	Success   bool              `json:"success"`
	Class     *domain.ApexClass `json:"class"`
	Provider  string            `json:"provider"`
	Timestamp string            `json:"timestamp"`
}

// UsersResponse lists active users.
type UsersResponse struct {
	Success   bool          `json:"success"`
	Users     []domain.User `json:"users"`
	TotalSize int           `json:"totalSize"`
	Provider  string        `json:"provider"`
	Timestamp string        `json:"timestamp"`
}

// LoginHistoryResponse lists recent logins.
type LoginHistoryResponse struct {
	Success bool                  `json:"success"`
	Logins  []domain.LoginHistory `json:"logins"`
}

// TemplatesResponse lists email templates.
type TemplatesResponse struct {
	Success   bool                   `json:"success"`
	Templates []domain.EmailTemplate `json:"templates"`
}

// LimitsResponse wraps the org limits document.
type LimitsResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

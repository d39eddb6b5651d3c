package dto

// ErrorResponse is the error body of every API endpoint. Details carries the
// per-field validation states or the upstream Salesforce error payload.
type ErrorResponse struct {
	Error      string `json:"error"`
	Details    any    `json:"details,omitempty"`
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"statusText,omitempty"`
}

// DeployErrorDetails is the details object of a deploy failure that
// happened before any job ran.
type DeployErrorDetails struct {
	Message string `json:"message"`
	Phase   string `json:"phase"`
	Details any    `json:"details,omitempty"`
}

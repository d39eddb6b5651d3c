package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GatewayErrorKind classifies a failed Salesforce API call at the point of failure.
type GatewayErrorKind string

const (
	// GatewayTimeout means the single HTTP request exceeded its deadline.
	GatewayTimeout GatewayErrorKind = "timeout"
	// GatewayHTTP means Salesforce answered with a non-2xx status.
	GatewayHTTP GatewayErrorKind = "http"
	// GatewayTransport means the request never got an answer (DNS, TLS, refused).
	GatewayTransport GatewayErrorKind = "transport"
	// GatewayDecode means a 2xx body could not be decoded.
	GatewayDecode GatewayErrorKind = "decode"
)

// GatewayError is returned by the Salesforce gateway for every failed call.
type GatewayError struct {
	Kind       GatewayErrorKind
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	switch e.Kind {
	case GatewayHTTP:
		return fmt.Sprintf("salesforce %s %s: %s", e.Method, e.URL, e.Status)
	case GatewayTimeout:
		return fmt.Sprintf("salesforce %s %s: request timed out", e.Method, e.URL)
	default:
		return fmt.Sprintf("salesforce %s %s: %v", e.Method, e.URL, e.Err)
	}
}

func (e *GatewayError) Unwrap() error {
	switch e.Kind {
	case GatewayTimeout:
		return ErrRequestTimeout
	case GatewayHTTP:
		return ErrUpstream
	}
	return e.Err
}

// BodyFormat tags how an upstream error body was understood.
type BodyFormat string

const (
	BodyJSON BodyFormat = "json"
	BodyRaw  BodyFormat = "raw"
)

// ErrorBody is an upstream error payload, parsed when it is JSON and kept
// verbatim when it is not.
type ErrorBody struct {
	Format BodyFormat
	JSON   any
	Raw    string
}

// ParseErrorBody never fails: anything that is not valid JSON is kept raw.
func ParseErrorBody(body string) ErrorBody {
	trimmed := strings.TrimSpace(body)
	var parsed any
	if trimmed != "" && json.Unmarshal([]byte(trimmed), &parsed) == nil {
		return ErrorBody{Format: BodyJSON, JSON: parsed, Raw: body}
	}
	return ErrorBody{Format: BodyRaw, Raw: body}
}

// MarshalJSON emits the parsed payload, or {"rawError": "..."} for text.
func (b ErrorBody) MarshalJSON() ([]byte, error) {
	if b.Format == BodyJSON {
		return json.Marshal(b.JSON)
	}
	return json.Marshal(map[string]string{"rawError": b.Raw})
}

// QueryResult is the envelope of a SOQL query response.
type QueryResult[T any] struct {
	TotalSize int  `json:"totalSize"`
	Done      bool `json:"done"`
	Records   []T  `json:"records"`
}

// SObjectCreateResult is the body Salesforce returns for a successful create.
type SObjectCreateResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

// EscapeSOQL escapes a value for use inside a single-quoted SOQL literal.
func EscapeSOQL(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return r.Replace(value)
}

package domain

import (
	"net/url"
	"strings"
)

// Credentials is the caller-supplied capability for one Salesforce org.
// It is borrowed read-only for the duration of a single operation; no
// refresh or revocation happens here.
type Credentials struct {
	InstanceURL string `json:"instanceUrl"`
	AccessToken string `json:"accessToken"`
}

// BaseURL returns the instance URL without a trailing slash.
func (c Credentials) BaseURL() string {
	return strings.TrimRight(strings.TrimSpace(c.InstanceURL), "/")
}

// Field states reported by ValidationError.
const (
	FieldMissing = "missing"
	FieldInvalid = "invalid"
	FieldPresent = "present"
)

// CheckCredentials reports the state of each credential field under the
// instanceUrl/accessToken keys.
func CheckCredentials(c Credentials) map[string]string {
	fields := map[string]string{
		"instanceUrl": FieldPresent,
		"accessToken": FieldPresent,
	}
	if strings.TrimSpace(c.InstanceURL) == "" {
		fields["instanceUrl"] = FieldMissing
	} else if !validInstanceURL(c.InstanceURL) {
		fields["instanceUrl"] = FieldInvalid
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		fields["accessToken"] = FieldMissing
	}
	return fields
}

func validInstanceURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}

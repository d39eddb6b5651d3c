package dto

import "github.com/bnema/forcedeck/internal/domain"

// AuthData is the sfAuthData object sent by the dashboard.
type AuthData struct {
	InstanceURL string `json:"instanceUrl"`
	AccessToken string `json:"accessToken"`
}

// AuthenticatedRequest accepts credentials either nested under sfAuthData or
// at the top level, which some dashboard views still send.
type AuthenticatedRequest struct {
	SFAuthData  *AuthData `json:"sfAuthData,omitempty"`
	InstanceURL string    `json:"instanceUrl,omitempty"`
	AccessToken string    `json:"accessToken,omitempty"`
}

// Credentials returns the credentials carried by the request.
func (r AuthenticatedRequest) Credentials() domain.Credentials {
	if r.SFAuthData != nil {
		return domain.Credentials{InstanceURL: r.SFAuthData.InstanceURL, AccessToken: r.SFAuthData.AccessToken}
	}
	return domain.Credentials{InstanceURL: r.InstanceURL, AccessToken: r.AccessToken}
}

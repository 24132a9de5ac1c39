package schema

import (
	"encoding/json"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Token is an IAM access token record. It is immutable once issued; the
// service does not refresh it on the caller's behalf.
type Token struct {
	AccessToken           string `json:"access_token"`
	RefreshToken          string `json:"refresh_token"`
	DelegatedRefreshToken string `json:"delegated_refresh_token,omitempty"`
	TokenType             string `json:"token_type"`
	ExpiresIn             int64  `json:"expires_in"`
	Expiration            int64  `json:"expiration"`
	Scope                 string `json:"scope,omitempty"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

// String renders the token metadata with the secret values masked, so a
// token can be logged without leaking credentials.
func (t Token) String() string {
	masked := t
	if masked.AccessToken != "" {
		masked.AccessToken = "****"
	}
	if masked.RefreshToken != "" {
		masked.RefreshToken = "****"
	}
	if masked.DelegatedRefreshToken != "" {
		masked.DelegatedRefreshToken = "****"
	}
	data, err := json.MarshalIndent(masked, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Expired reports whether the token expiration has passed. Re-authentication
// remains the caller's responsibility.
func (t Token) Expired(now time.Time) bool {
	return t.Expiration > 0 && now.Unix() >= t.Expiration
}

package models

// TokenResponse is returned by POST /token on successful authentication.
type TokenResponse struct {
	// AccessToken is the compact signed token to be sent as
	// "Authorization: Bearer <token>".
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version string `json:"version"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

package imgur

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// Response is a decoded Imgur JSON document, returned to the caller as
// received. Every Imgur endpoint answers with a JSON object, so a body that
// is valid JSON but not an object fails to decode.
type Response map[string]any

// Success reports the "success" field of the standard Imgur envelope.
func (r Response) Success() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// Status returns the "status" field of the envelope, or 0 if absent.
func (r Response) Status() int {
	if status, ok := r["status"].(float64); ok {
		return int(status)
	}
	return 0
}

// Data returns the "data" field of the envelope.
func (r Response) Data() any {
	return r["data"]
}

// Decode re-encodes the document into v.
func (r Response) Decode(v any) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// tokenResponse mirrors the body of the OAuth2 token endpoint.
type tokenResponse struct {
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	ExpiresIn       int64  `json:"expires_in"`
	TokenType       string `json:"token_type"`
	Scope           string `json:"scope"`
	AccountID       int64  `json:"account_id"`
	AccountUsername string `json:"account_username"`
}

// Token interprets a token exchange response as an oauth2.Token. The
// account_id and account_username fields are available through Extra.
func (r Response) Token() (*oauth2.Token, error) {
	var tr tokenResponse
	if err := r.Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("access_token not found in response")
	}

	token := &oauth2.Token{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
	}
	if tr.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	return token.WithExtra(map[string]any{
		"account_id":       tr.AccountID,
		"account_username": tr.AccountUsername,
		"scope":            tr.Scope,
	}), nil
}

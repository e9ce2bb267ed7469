package imgur

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/oauth2"
)

// Endpoint is the Imgur OAuth2 endpoint. Imgur expects client credentials in
// the form body.
var Endpoint = oauth2.Endpoint{
	AuthURL:   OAuth2AuthorizeEndpoint,
	TokenURL:  OAuth2TokenEndpoint,
	AuthStyle: oauth2.AuthStyleInParams,
}

// OAuthConfig builds the authorization code flow configuration for a
// registered Imgur application.
func OAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     Endpoint,
	}
}

// GenerateState returns a random value for the OAuth2 state parameter.
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

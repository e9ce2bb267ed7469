package imgur

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestOAuthConfig(t *testing.T) {
	cfg := OAuthConfig("client", "secret", "http://127.0.0.1:8085/callback")

	assert.Equal(t, OAuth2TokenEndpoint, cfg.Endpoint.TokenURL)
	assert.Equal(t, oauth2.AuthStyleInParams, cfg.Endpoint.AuthStyle)

	consent, err := url.Parse(cfg.AuthCodeURL("xyz"))
	require.NoError(t, err)
	assert.Equal(t, "api.imgur.com", consent.Host)
	assert.Equal(t, "/oauth2/authorize", consent.Path)

	query := consent.Query()
	assert.Equal(t, "client", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "xyz", query.Get("state"))
	assert.Equal(t, "http://127.0.0.1:8085/callback", query.Get("redirect_uri"))
}

func TestGenerateState(t *testing.T) {
	a, err := GenerateState()
	require.NoError(t, err)
	b, err := GenerateState()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

package imgur

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when the credential an operation
// authorizes with is empty.
var ErrMissingCredential = errors.New("missing credential")

func clientIDHeader(clientID string) (string, error) {
	if clientID == "" {
		return "", fmt.Errorf("%w: client id is required", ErrMissingCredential)
	}
	return "Client-ID " + clientID, nil
}

func bearerHeader(accessToken string) (string, error) {
	if accessToken == "" {
		return "", fmt.Errorf("%w: access token is required", ErrMissingCredential)
	}
	return "Bearer " + accessToken, nil
}

// selectAuthHeader prefers the user's access token and falls back to the
// application client id.
func selectAuthHeader(accessToken, clientID string) (string, error) {
	if accessToken != "" {
		return bearerHeader(accessToken)
	}
	if clientID != "" {
		return clientIDHeader(clientID)
	}
	return "", fmt.Errorf("%w: access token or client id is required", ErrMissingCredential)
}

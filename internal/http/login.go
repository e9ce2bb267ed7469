package http

import (
	"context"
	"fmt"

	"github.com/ochronus/goimgur/internal/app"
	"github.com/ochronus/goimgur/internal/services/imgur"
	"golang.org/x/oauth2"
)

// Authorize runs the authorization code flow. It serves the callback, hands
// the consent URL to prompt, waits for the redirect and exchanges the code.
func Authorize(ctx context.Context, container *app.Container, prompt func(consentURL string)) (*oauth2.Token, error) {
	state, err := imgur.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	serverCtx, stop := context.WithCancel(ctx)
	defer stop()

	server := NewServer(container, state)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.StartWithContext(serverCtx)
	}()

	select {
	case <-server.Ready():
	case err := <-errCh:
		return nil, fmt.Errorf("failed to start callback server: %w", err)
	}

	cfg := container.Config
	oauthCfg := imgur.OAuthConfig(cfg.Imgur.ClientID, cfg.Imgur.ClientSecret, server.CallbackURL())
	prompt(oauthCfg.AuthCodeURL(state))

	var result CallbackResult
	select {
	case result = <-server.Results():
	case err := <-errCh:
		if err == nil {
			err = ctx.Err()
		}
		return nil, fmt.Errorf("callback server stopped: %w", err)
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	stop()
	if err := <-errCh; err != nil {
		container.Logger.Warnf("callback server shutdown: %v", err)
	}

	if result.Err != nil {
		return nil, result.Err
	}

	exchangeCtx := context.WithValue(ctx, oauth2.HTTPClient, container.HTTPClient)
	token, err := oauthCfg.Exchange(exchangeCtx, result.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	return token, nil
}

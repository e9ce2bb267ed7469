package imgur

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
)

// AccessTokenRequest holds the credentials for a refresh token exchange.
type AccessTokenRequest struct {
	RefreshToken string
	ClientID     string
	ClientSecret string
}

// BaseInfoOptions selects an account by username or account id.
type BaseInfoOptions struct {
	Username  string
	AccountID string
	ClientID  string
}

// BlockOptions identifies the user whose block is read or changed.
type BlockOptions struct {
	Username    string
	AccessToken string
}

// ImagesOptions lists the images of Username, or of the token owner when
// Username is empty.
type ImagesOptions struct {
	Username    string
	AccessToken string
}

// GalleryFavoritesOptions pages through a user's gallery favorites.
// FavoriteSort only applies when Page is set.
type GalleryFavoritesOptions struct {
	Username     string
	ClientID     string
	Page         int
	FavoriteSort string
}

// FavoritesOptions pages through a user's favorites. Sort only applies when
// Page is set.
type FavoritesOptions struct {
	Username    string
	AccessToken string
	Page        int
	Sort        string
}

// SubmissionsOptions pages through a user's gallery submissions.
type SubmissionsOptions struct {
	Username string
	ClientID string
	Page     int
}

// AvailableAvatarsOptions authorizes with AccessToken when set, otherwise
// with ClientID.
type AvailableAvatarsOptions struct {
	Username    string
	AccessToken string
	ClientID    string
}

type AvatarOptions struct {
	Username    string
	AccessToken string
}

type SettingsOptions struct {
	AccessToken string
}

// ChangeSettingsOptions carries the settings to update, sent verbatim as form
// fields (for example "bio", "public_images", "album_privacy").
type ChangeSettingsOptions struct {
	AccessToken string
	Settings    map[string]string
}

// GalleryProfileOptions reads the gallery profile of Username, or of the
// token owner when Username is empty.
type GalleryProfileOptions struct {
	Username    string
	AccessToken string
}

type VerifyEmailOptions struct {
	Username    string
	AccessToken string
}

// GenerateAccessToken exchanges a refresh token for a new access token. The
// token endpoint's response is returned untouched; see Response.Token.
func (c *Client) GenerateAccessToken(ctx context.Context, req AccessTokenRequest) (Response, error) {
	form := []formField{
		{"refresh_token", req.RefreshToken},
		{"client_id", req.ClientID},
		{"client_secret", req.ClientSecret},
		{"grant_type", "refresh_token"},
	}
	return c.doRequest(ctx, http.MethodPost, OAuth2TokenEndpoint, "", form)
}

// GetBaseInfo returns basic account information. The account id form takes
// precedence over the username form when both are given.
func (c *Client) GetBaseInfo(ctx context.Context, opts BaseInfoOptions) (Response, error) {
	auth, err := clientIDHeader(opts.ClientID)
	if err != nil {
		return nil, err
	}

	endpoint := AccountEndpoint
	if opts.Username != "" {
		endpoint = AccountEndpoint + "/" + url.PathEscape(opts.Username)
	}
	if opts.AccountID != "" {
		endpoint = AccountEndpoint + "/?account_id=" + url.QueryEscape(opts.AccountID)
	}

	return c.doRequest(ctx, http.MethodGet, endpoint, auth, nil)
}

// GetBlockStatus reports whether the token owner has blocked Username.
func (c *Client) GetBlockStatus(ctx context.Context, opts BlockOptions) (Response, error) {
	return c.bearerRequest(ctx, http.MethodGet, BlockStatusEndpoint, opts.Username, opts.AccessToken)
}

// GetBlocks lists the users blocked by the token owner.
func (c *Client) GetBlocks(ctx context.Context, accessToken string) (Response, error) {
	return c.bearerRequest(ctx, http.MethodGet, BlocksEndpoint, "", accessToken)
}

// CreateBlock blocks Username.
func (c *Client) CreateBlock(ctx context.Context, opts BlockOptions) (Response, error) {
	return c.bearerRequest(ctx, http.MethodPost, BlockCreateDeleteEndpoint, opts.Username, opts.AccessToken)
}

// DeleteBlock unblocks Username.
func (c *Client) DeleteBlock(ctx context.Context, opts BlockOptions) (Response, error) {
	return c.bearerRequest(ctx, http.MethodDelete, BlockCreateDeleteEndpoint, opts.Username, opts.AccessToken)
}

// GetImages lists account images.
func (c *Client) GetImages(ctx context.Context, opts ImagesOptions) (Response, error) {
	username := opts.Username
	if username == "" {
		username = DefaultUsername
	}
	return c.bearerRequest(ctx, http.MethodGet, ImagesEndpoint, username, opts.AccessToken)
}

// GetGalleryFavorites lists the images a user has favorited in the gallery.
func (c *Client) GetGalleryFavorites(ctx context.Context, opts GalleryFavoritesOptions) (Response, error) {
	auth, err := clientIDHeader(opts.ClientID)
	if err != nil {
		return nil, err
	}

	endpoint, err := userEndpoint(GalleryFavoritesEndpoint, opts.Username)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodGet, withPage(endpoint, opts.Page, opts.FavoriteSort), auth, nil)
}

// GetFavorites lists a user's favorites, including private ones.
func (c *Client) GetFavorites(ctx context.Context, opts FavoritesOptions) (Response, error) {
	auth, err := bearerHeader(opts.AccessToken)
	if err != nil {
		return nil, err
	}

	endpoint, err := userEndpoint(FavoritesEndpoint, opts.Username)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodGet, withPage(endpoint, opts.Page, opts.Sort), auth, nil)
}

// GetSubmissions lists a user's gallery submissions.
func (c *Client) GetSubmissions(ctx context.Context, opts SubmissionsOptions) (Response, error) {
	auth, err := clientIDHeader(opts.ClientID)
	if err != nil {
		return nil, err
	}

	endpoint, err := userEndpoint(SubmissionsEndpoint, opts.Username)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodGet, withPage(endpoint, opts.Page, ""), auth, nil)
}

// GetAvailableAvatars lists the avatars a user may pick from.
func (c *Client) GetAvailableAvatars(ctx context.Context, opts AvailableAvatarsOptions) (Response, error) {
	auth, err := selectAuthHeader(opts.AccessToken, opts.ClientID)
	if err != nil {
		return nil, err
	}

	endpoint, err := userEndpoint(AvailableAvatarsEndpoint, opts.Username)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodGet, endpoint, auth, nil)
}

// GetAvatar returns a user's current avatar.
func (c *Client) GetAvatar(ctx context.Context, opts AvatarOptions) (Response, error) {
	return c.bearerRequest(ctx, http.MethodGet, AvatarEndpoint, opts.Username, opts.AccessToken)
}

// GetSettings returns the token owner's account settings.
func (c *Client) GetSettings(ctx context.Context, opts SettingsOptions) (Response, error) {
	return c.bearerRequest(ctx, http.MethodGet, SettingsEndpoint, "", opts.AccessToken)
}

// ChangeSettings updates the token owner's account settings. Fields are sent
// in key order.
func (c *Client) ChangeSettings(ctx context.Context, opts ChangeSettingsOptions) (Response, error) {
	auth, err := bearerHeader(opts.AccessToken)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(opts.Settings))
	for key := range opts.Settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	form := make([]formField, 0, len(keys))
	for _, key := range keys {
		form = append(form, formField{key, opts.Settings[key]})
	}

	return c.doRequest(ctx, http.MethodPost, SettingsEndpoint, auth, form)
}

// GetGalleryProfile returns gallery statistics for a user.
func (c *Client) GetGalleryProfile(ctx context.Context, opts GalleryProfileOptions) (Response, error) {
	username := opts.Username
	if username == "" {
		username = DefaultUsername
	}
	return c.bearerRequest(ctx, http.MethodGet, GalleryProfileEndpoint, username, opts.AccessToken)
}

// VerifyEmail reports whether a user's email address is verified.
func (c *Client) VerifyEmail(ctx context.Context, opts VerifyEmailOptions) (Response, error) {
	return c.bearerRequest(ctx, http.MethodGet, VerifyEmailEndpoint, opts.Username, opts.AccessToken)
}

// bearerRequest issues a body-less request to a template that takes at most a
// username, authorized with the user's access token.
func (c *Client) bearerRequest(ctx context.Context, method, template, username, accessToken string) (Response, error) {
	auth, err := bearerHeader(accessToken)
	if err != nil {
		return nil, err
	}

	endpoint, err := userEndpoint(template, username)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, template, err)
	}

	return c.doRequest(ctx, method, endpoint, auth, nil)
}

package imgur

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint templates. A "<username>" placeholder is substituted per call.
const (
	OAuth2TokenEndpoint     = "https://api.imgur.com/oauth2/token"
	OAuth2AuthorizeEndpoint = "https://api.imgur.com/oauth2/authorize"

	AccountEndpoint = "https://api.imgur.com/3/account"

	BlockStatusEndpoint       = "https://api.imgur.com/account/v1/<username>/block"
	BlocksEndpoint            = "https://api.imgur.com/3/account/me/block"
	BlockCreateDeleteEndpoint = "https://api.imgur.com/account/v1/<username>/block"

	ImagesEndpoint           = "https://api.imgur.com/3/account/<username>/images"
	GalleryFavoritesEndpoint = "https://api.imgur.com/3/account/<username>/gallery_favorites"
	FavoritesEndpoint        = "https://api.imgur.com/3/account/<username>/favorites"
	SubmissionsEndpoint      = "https://api.imgur.com/3/account/<username>/submissions"
	AvailableAvatarsEndpoint = "https://api.imgur.com/3/account/<username>/available_avatars"
	AvatarEndpoint           = "https://api.imgur.com/3/account/<username>/avatar"
	SettingsEndpoint         = "https://api.imgur.com/3/account/me/settings"
	GalleryProfileEndpoint   = "https://api.imgur.com/3/account/<username>/gallery_profile"
	VerifyEmailEndpoint      = "https://api.imgur.com/3/account/<username>/verifyemail"
)

// DefaultUsername addresses the account that owns the access token.
const DefaultUsername = "me"

// ErrUnresolvedPlaceholder is returned when a template still holds a
// "<name>" token after substitution.
var ErrUnresolvedPlaceholder = errors.New("unresolved endpoint placeholder")

// expandEndpoint replaces each "<key>" in template with the path-escaped
// params[key]. Empty values do not count as resolved.
func expandEndpoint(template string, params map[string]string) (string, error) {
	endpoint := template
	for key, value := range params {
		if value == "" {
			continue
		}
		endpoint = strings.ReplaceAll(endpoint, "<"+key+">", url.PathEscape(value))
	}

	if start := strings.Index(endpoint, "<"); start >= 0 {
		if end := strings.Index(endpoint[start:], ">"); end > 0 {
			return "", fmt.Errorf("%w %s in %s", ErrUnresolvedPlaceholder, endpoint[start:start+end+1], template)
		}
	}

	return endpoint, nil
}

// userEndpoint resolves a template that only takes a username.
func userEndpoint(template, username string) (string, error) {
	return expandEndpoint(template, map[string]string{"username": username})
}

// withPage appends "/page" when page is positive and then "/sort" when sort
// is set. Sort is never applied without a page.
func withPage(endpoint string, page int, sort string) string {
	if page <= 0 {
		return endpoint
	}
	endpoint = endpoint + "/" + strconv.Itoa(page)
	if sort != "" {
		endpoint = endpoint + "/" + url.PathEscape(sort)
	}
	return endpoint
}

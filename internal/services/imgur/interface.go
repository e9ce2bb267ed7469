package imgur

import "context"

// AccountAPI defines the Imgur account operations.
// It mirrors the concrete client so it can be mocked in tests.
type AccountAPI interface {
	GenerateAccessToken(ctx context.Context, req AccessTokenRequest) (Response, error)
	GetBaseInfo(ctx context.Context, opts BaseInfoOptions) (Response, error)
	GetBlockStatus(ctx context.Context, opts BlockOptions) (Response, error)
	GetBlocks(ctx context.Context, accessToken string) (Response, error)
	CreateBlock(ctx context.Context, opts BlockOptions) (Response, error)
	DeleteBlock(ctx context.Context, opts BlockOptions) (Response, error)
	GetImages(ctx context.Context, opts ImagesOptions) (Response, error)
	GetGalleryFavorites(ctx context.Context, opts GalleryFavoritesOptions) (Response, error)
	GetFavorites(ctx context.Context, opts FavoritesOptions) (Response, error)
	GetSubmissions(ctx context.Context, opts SubmissionsOptions) (Response, error)
	GetAvailableAvatars(ctx context.Context, opts AvailableAvatarsOptions) (Response, error)
	GetAvatar(ctx context.Context, opts AvatarOptions) (Response, error)
	GetSettings(ctx context.Context, opts SettingsOptions) (Response, error)
	ChangeSettings(ctx context.Context, opts ChangeSettingsOptions) (Response, error)
	GetGalleryProfile(ctx context.Context, opts GalleryProfileOptions) (Response, error)
	VerifyEmail(ctx context.Context, opts VerifyEmailOptions) (Response, error)
}

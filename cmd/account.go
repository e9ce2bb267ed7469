package main

import (
	"context"
	"fmt"

	"github.com/ochronus/goimgur/internal/app"
	"github.com/ochronus/goimgur/internal/services/imgur"
	"github.com/ochronus/goimgur/internal/utils"
	"github.com/spf13/cobra"
)

type accountCall func(ctx context.Context, c *app.Container, args []string) (imgur.Response, error)

// runAccount loads the container, runs call and prints the response.
func runAccount(requireToken bool, call accountCall) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		container, err := loadContainer()
		if err != nil {
			return err
		}
		if requireToken {
			if err := container.Config.RequireUserTokens(); err != nil {
				return err
			}
		}

		resp, err := call(cmd.Context(), container, args)
		if err != nil {
			return err
		}
		return utils.PrintJSON(cmd.OutOrStdout(), resp)
	}
}

// ownUsername returns name, the configured username, or "me".
func ownUsername(c *app.Container, name string) string {
	if name != "" {
		return name
	}
	if c.Config.Imgur.Username != "" {
		return c.Config.Imgur.Username
	}
	return imgur.DefaultUsername
}

// publicUsername returns name or the configured username. Calls authorized
// with the client id cannot address the account as "me".
func publicUsername(c *app.Container, name string) (string, error) {
	if name != "" {
		return name, nil
	}
	if c.Config.Imgur.Username != "" {
		return c.Config.Imgur.Username, nil
	}
	return "", fmt.Errorf("--username or imgur.username is required")
}

func newAccountCmd() *cobra.Command {
	var (
		username  string
		accountID string
		page      int
		sort      string
	)

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Call the Imgur account API",
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show basic account information",
		Args:  cobra.NoArgs,
		RunE: runAccount(false, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			return c.ImgurClient.GetBaseInfo(ctx, imgur.BaseInfoOptions{
				Username:  username,
				AccountID: accountID,
				ClientID:  c.Config.Imgur.ClientID,
			})
		}),
	}
	infoCmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	infoCmd.Flags().StringVar(&accountID, "account-id", "", "Account ID, takes precedence over --username")

	blockStatusCmd := &cobra.Command{
		Use:   "block-status <username>",
		Short: "Show whether a user is blocked",
		Args:  cobra.ExactArgs(1),
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, args []string) (imgur.Response, error) {
			return c.ImgurClient.GetBlockStatus(ctx, imgur.BlockOptions{Username: args[0], AccessToken: c.Config.Imgur.AccessToken})
		}),
	}

	blocksCmd := &cobra.Command{
		Use:   "blocks",
		Short: "List blocked users",
		Args:  cobra.NoArgs,
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			return c.ImgurClient.GetBlocks(ctx, c.Config.Imgur.AccessToken)
		}),
	}

	blockCmd := &cobra.Command{
		Use:   "block <username>",
		Short: "Block a user",
		Args:  cobra.ExactArgs(1),
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, args []string) (imgur.Response, error) {
			return c.ImgurClient.CreateBlock(ctx, imgur.BlockOptions{Username: args[0], AccessToken: c.Config.Imgur.AccessToken})
		}),
	}

	unblockCmd := &cobra.Command{
		Use:   "unblock <username>",
		Short: "Unblock a user",
		Args:  cobra.ExactArgs(1),
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, args []string) (imgur.Response, error) {
			return c.ImgurClient.DeleteBlock(ctx, imgur.BlockOptions{Username: args[0], AccessToken: c.Config.Imgur.AccessToken})
		}),
	}

	imagesCmd := &cobra.Command{
		Use:   "images",
		Short: "List account images",
		Args:  cobra.NoArgs,
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			return c.ImgurClient.GetImages(ctx, imgur.ImagesOptions{Username: username, AccessToken: c.Config.Imgur.AccessToken})
		}),
	}
	imagesCmd.Flags().StringVarP(&username, "username", "u", "", "Account username (default: the token owner)")

	galleryFavoritesCmd := &cobra.Command{
		Use:   "gallery-favorites",
		Short: "List gallery favorites",
		Args:  cobra.NoArgs,
		RunE: runAccount(false, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			name, err := publicUsername(c, username)
			if err != nil {
				return nil, err
			}
			return c.ImgurClient.GetGalleryFavorites(ctx, imgur.GalleryFavoritesOptions{
				Username:     name,
				ClientID:     c.Config.Imgur.ClientID,
				Page:         page,
				FavoriteSort: sort,
			})
		}),
	}

	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorites",
		Args:  cobra.NoArgs,
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			return c.ImgurClient.GetFavorites(ctx, imgur.FavoritesOptions{
				Username:    ownUsername(c, username),
				AccessToken: c.Config.Imgur.AccessToken,
				Page:        page,
				Sort:        sort,
			})
		}),
	}

	for _, cmd := range []*cobra.Command{galleryFavoritesCmd, favoritesCmd} {
		cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
		cmd.Flags().IntVarP(&page, "page", "p", 0, "Page number, starting at 1")
		cmd.Flags().StringVarP(&sort, "sort", "s", "", "Sort order (oldest, newest), requires --page")
	}

	submissionsCmd := &cobra.Command{
		Use:   "submissions",
		Short: "List gallery submissions",
		Args:  cobra.NoArgs,
		RunE: runAccount(false, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			name, err := publicUsername(c, username)
			if err != nil {
				return nil, err
			}
			return c.ImgurClient.GetSubmissions(ctx, imgur.SubmissionsOptions{
				Username: name,
				ClientID: c.Config.Imgur.ClientID,
				Page:     page,
			})
		}),
	}
	submissionsCmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	submissionsCmd.Flags().IntVarP(&page, "page", "p", 0, "Page number, starting at 1")

	availableAvatarsCmd := &cobra.Command{
		Use:   "available-avatars",
		Short: "List avatars available to the account",
		Args:  cobra.NoArgs,
		RunE: runAccount(false, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			return c.ImgurClient.GetAvailableAvatars(ctx, imgur.AvailableAvatarsOptions{
				Username:    ownUsername(c, username),
				AccessToken: c.Config.Imgur.AccessToken,
				ClientID:    c.Config.Imgur.ClientID,
			})
		}),
	}

	avatarCmd := &cobra.Command{
		Use:   "avatar",
		Short: "Show the current avatar",
		Args:  cobra.NoArgs,
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			return c.ImgurClient.GetAvatar(ctx, imgur.AvatarOptions{Username: ownUsername(c, username), AccessToken: c.Config.Imgur.AccessToken})
		}),
	}

	galleryProfileCmd := &cobra.Command{
		Use:   "gallery-profile",
		Short: "Show gallery profile statistics",
		Args:  cobra.NoArgs,
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			return c.ImgurClient.GetGalleryProfile(ctx, imgur.GalleryProfileOptions{Username: username, AccessToken: c.Config.Imgur.AccessToken})
		}),
	}

	verifyEmailCmd := &cobra.Command{
		Use:   "verify-email",
		Short: "Show whether the account email is verified",
		Args:  cobra.NoArgs,
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			return c.ImgurClient.VerifyEmail(ctx, imgur.VerifyEmailOptions{Username: ownUsername(c, username), AccessToken: c.Config.Imgur.AccessToken})
		}),
	}

	for _, cmd := range []*cobra.Command{availableAvatarsCmd, avatarCmd, galleryProfileCmd, verifyEmailCmd} {
		cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	}

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show account settings",
		Args:  cobra.NoArgs,
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, _ []string) (imgur.Response, error) {
			return c.ImgurClient.GetSettings(ctx, imgur.SettingsOptions{AccessToken: c.Config.Imgur.AccessToken})
		}),
	}

	setSettingsCmd := &cobra.Command{
		Use:   "set-settings key=value...",
		Short: "Change account settings",
		Args:  cobra.MinimumNArgs(1),
		RunE: runAccount(true, func(ctx context.Context, c *app.Container, args []string) (imgur.Response, error) {
			settings, err := utils.ParseSettings(args)
			if err != nil {
				return nil, err
			}
			return c.ImgurClient.ChangeSettings(ctx, imgur.ChangeSettingsOptions{AccessToken: c.Config.Imgur.AccessToken, Settings: settings})
		}),
	}

	accountCmd.AddCommand(
		infoCmd,
		blockStatusCmd,
		blocksCmd,
		blockCmd,
		unblockCmd,
		imagesCmd,
		galleryFavoritesCmd,
		favoritesCmd,
		submissionsCmd,
		availableAvatarsCmd,
		avatarCmd,
		settingsCmd,
		setSettingsCmd,
		galleryProfileCmd,
		verifyEmailCmd,
	)

	return accountCmd
}

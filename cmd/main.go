package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ochronus/goimgur/internal/app"
	"github.com/ochronus/goimgur/internal/config"
	"github.com/ochronus/goimgur/internal/http"
	"github.com/ochronus/goimgur/internal/services/imgur"
	"github.com/ochronus/goimgur/internal/utils"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var configPath string

func main() {
	// Get default config path
	defaultConfigPath, err := config.DefaultConfigPath()
	if err != nil {
		defaultConfigPath = "./config.toml"
	}

	// Root command
	rootCmd := &cobra.Command{
		Use:           "goimgur",
		Short:         "Imgur account API client",
		Long:          "Command line client for the Imgur account API: tokens, profile, blocks, images, favorites, avatars and settings.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to config file")

	// Login command
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authorize this client with your Imgur account",
		RunE:  runLogin,
	}

	// Refresh-token command
	var save bool
	refreshCmd := &cobra.Command{
		Use:   "refresh-token",
		Short: "Exchange the refresh token for a new access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefreshToken(cmd, save)
		},
	}
	refreshCmd.Flags().BoolVar(&save, "save", false, "Store the new access token in the config file")

	// Generate-config command
	var clientID, clientSecret string
	generateConfigCmd := &cobra.Command{
		Use:   "generate-config",
		Short: "Generate config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return utils.GenerateConfig(configPath, clientID, clientSecret)
		},
	}
	generateConfigCmd.Flags().StringVar(&clientID, "client-id", "", "Imgur application client ID")
	generateConfigCmd.Flags().StringVar(&clientSecret, "client-secret", "", "Imgur application client secret")
	_ = generateConfigCmd.MarkFlagRequired("client-id")

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("goimgur version %s\n", version)
		},
	}

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(generateConfigCmd)
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadContainer loads and validates the configuration and builds the shared
// dependencies.
func loadContainer() (*app.Container, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	container, err := app.NewContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build container: %w", err)
	}

	return container, nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	container, err := loadContainer()
	if err != nil {
		return err
	}
	cfg := container.Config
	if cfg.Imgur.ClientSecret == "" {
		return fmt.Errorf("imgur.client_secret is required")
	}

	container.Logger.Infof("Callback URL registered for your application must be %s", cfg.RedirectURL())

	token, err := http.Authorize(cmd.Context(), container, func(consentURL string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in your browser and allow access:\n\n%s\n\n", consentURL)
		fmt.Fprintln(cmd.OutOrStdout(), "Waiting for authorization...")
	})
	if err != nil {
		return err
	}

	cfg.Imgur.AccessToken = token.AccessToken
	cfg.Imgur.RefreshToken = token.RefreshToken
	if username, ok := token.Extra("account_username").(string); ok && username != "" {
		cfg.Imgur.Username = username
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	container.Logger.Infof("Logged in as %s, tokens saved to %s", cfg.Imgur.Username, configPath)
	return nil
}

func runRefreshToken(cmd *cobra.Command, save bool) error {
	container, err := loadContainer()
	if err != nil {
		return err
	}
	cfg := container.Config
	if err := cfg.RequireRefreshCredentials(); err != nil {
		return err
	}

	resp, err := container.ImgurClient.GenerateAccessToken(cmd.Context(), imgur.AccessTokenRequest{
		RefreshToken: cfg.Imgur.RefreshToken,
		ClientID:     cfg.Imgur.ClientID,
		ClientSecret: cfg.Imgur.ClientSecret,
	})
	if err != nil {
		return fmt.Errorf("failed to refresh access token: %w", err)
	}

	if err := utils.PrintJSON(cmd.OutOrStdout(), resp); err != nil {
		return err
	}
	if !save {
		return nil
	}

	token, err := resp.Token()
	if err != nil {
		return err
	}
	cfg.Imgur.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		cfg.Imgur.RefreshToken = token.RefreshToken
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	container.Logger.Infof("Access token saved to %s", configPath)
	return nil
}

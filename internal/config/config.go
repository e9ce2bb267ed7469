package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const (
	MinTimeout = 1
	MaxTimeout = 300
)

// Config represents the main application configuration
type Config struct {
	Loglevel string      `toml:"loglevel"`
	Timeout  int         `toml:"timeout"`
	Imgur    ImgurConfig `toml:"imgur"`
	Login    LoginConfig `toml:"login"`
}

// ImgurConfig holds the registered application and the tokens of the
// authorized user
type ImgurConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RefreshToken string `toml:"refresh_token"`
	AccessToken  string `toml:"access_token"`
	Username     string `toml:"username"`
}

// LoginConfig holds the address of the local OAuth callback server
type LoginConfig struct {
	BindAddress string `toml:"bind_address"`
	Port        int    `toml:"port"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Loglevel: "info",
		Timeout:  10,
		Login: LoginConfig{
			BindAddress: "127.0.0.1",
			Port:        8085,
		},
	}
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "goimgur")

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads configuration from a TOML file
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Loglevel); err != nil {
		return fmt.Errorf("loglevel must be one of: panic, fatal, error, warn, info, debug, trace")
	}
	if c.Timeout < MinTimeout || c.Timeout > MaxTimeout {
		return fmt.Errorf("timeout must be between %d and %d seconds", MinTimeout, MaxTimeout)
	}

	if c.Imgur.ClientID == "" {
		return fmt.Errorf("imgur.client_id is required")
	}

	if net.ParseIP(c.Login.BindAddress) == nil && c.Login.BindAddress != "localhost" {
		return fmt.Errorf("login.bind_address is invalid: %s", c.Login.BindAddress)
	}
	if c.Login.Port < 1 || c.Login.Port > 65535 {
		return fmt.Errorf("login.port must be between 1 and 65535")
	}

	return nil
}

// RequireUserTokens checks that the config can authorize user-level calls.
func (c *Config) RequireUserTokens() error {
	if c.Imgur.AccessToken == "" {
		return fmt.Errorf("imgur.access_token is required, run 'goimgur login' or 'goimgur refresh-token --save'")
	}
	return nil
}

// RequireRefreshCredentials checks that a refresh token exchange is possible.
func (c *Config) RequireRefreshCredentials() error {
	if c.Imgur.ClientSecret == "" {
		return fmt.Errorf("imgur.client_secret is required")
	}
	if c.Imgur.RefreshToken == "" {
		return fmt.Errorf("imgur.refresh_token is required, run 'goimgur login'")
	}
	return nil
}

// RedirectURL returns the OAuth callback URL served during login.
func (c *Config) RedirectURL() string {
	return fmt.Sprintf("http://%s/callback", net.JoinHostPort(c.Login.BindAddress, fmt.Sprint(c.Login.Port)))
}

// Save writes the configuration to configPath, creating parent directories.
func (c *Config) Save(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(configPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

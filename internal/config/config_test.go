package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Imgur.ClientID = "client"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Loglevel != "info" {
		t.Errorf("expected Loglevel to be 'info', got '%s'", cfg.Loglevel)
	}
	if cfg.Timeout != 10 {
		t.Errorf("expected Timeout to be 10, got %d", cfg.Timeout)
	}
	if cfg.Login.BindAddress != "127.0.0.1" {
		t.Errorf("expected Login.BindAddress to be '127.0.0.1', got '%s'", cfg.Login.BindAddress)
	}
	if cfg.Login.Port != 8085 {
		t.Errorf("expected Login.Port to be 8085, got %d", cfg.Login.Port)
	}
	if cfg.Imgur != (ImgurConfig{}) {
		t.Errorf("expected empty Imgur config, got %+v", cfg.Imgur)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected path to end with 'config.toml', got '%s'", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != "goimgur" {
		t.Errorf("expected config directory 'goimgur', got '%s'", filepath.Dir(path))
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
loglevel = "debug"
timeout = 30

[imgur]
client_id = "my-client"
client_secret = "my-secret"
refresh_token = "my-refresh"
access_token = "my-access"
username = "alice"

[login]
port = 9000
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Loglevel != "debug" {
		t.Errorf("expected Loglevel 'debug', got '%s'", cfg.Loglevel)
	}
	if cfg.Timeout != 30 {
		t.Errorf("expected Timeout 30, got %d", cfg.Timeout)
	}
	want := ImgurConfig{
		ClientID:     "my-client",
		ClientSecret: "my-secret",
		RefreshToken: "my-refresh",
		AccessToken:  "my-access",
		Username:     "alice",
	}
	if cfg.Imgur != want {
		t.Errorf("expected Imgur %+v, got %+v", want, cfg.Imgur)
	}
	if cfg.Login.Port != 9000 {
		t.Errorf("expected Login.Port 9000, got %d", cfg.Login.Port)
	}
	// Default survives a partial [login] table
	if cfg.Login.BindAddress != "127.0.0.1" {
		t.Errorf("expected default Login.BindAddress, got '%s'", cfg.Login.BindAddress)
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	invalidContent := `
loglevel = "debug
[imgur
`
	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:   "localhost bind address",
			mutate: func(c *Config) { c.Login.BindAddress = "localhost" },
		},
		{
			name:    "invalid loglevel",
			mutate:  func(c *Config) { c.Loglevel = "loud" },
			wantErr: true,
			errMsg:  "loglevel must be one of: panic, fatal, error, warn, info, debug, trace",
		},
		{
			name:    "timeout too small",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: true,
			errMsg:  "timeout must be between 1 and 300 seconds",
		},
		{
			name:    "timeout too large",
			mutate:  func(c *Config) { c.Timeout = 301 },
			wantErr: true,
			errMsg:  "timeout must be between 1 and 300 seconds",
		},
		{
			name:    "missing client id",
			mutate:  func(c *Config) { c.Imgur.ClientID = "" },
			wantErr: true,
			errMsg:  "imgur.client_id is required",
		},
		{
			name:    "invalid bind address",
			mutate:  func(c *Config) { c.Login.BindAddress = "not an ip" },
			wantErr: true,
			errMsg:  "login.bind_address is invalid: not an ip",
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Login.Port = 70000 },
			wantErr: true,
			errMsg:  "login.port must be between 1 and 65535",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing '%s', got nil", tt.errMsg)
				} else if err.Error() != tt.errMsg {
					t.Errorf("expected error '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRequireUserTokens(t *testing.T) {
	cfg := validConfig()
	if err := cfg.RequireUserTokens(); err == nil {
		t.Error("expected error without access token")
	}

	cfg.Imgur.AccessToken = "token"
	if err := cfg.RequireUserTokens(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRequireRefreshCredentials(t *testing.T) {
	cfg := validConfig()
	if err := cfg.RequireRefreshCredentials(); err == nil {
		t.Error("expected error without client secret")
	}

	cfg.Imgur.ClientSecret = "secret"
	if err := cfg.RequireRefreshCredentials(); err == nil {
		t.Error("expected error without refresh token")
	}

	cfg.Imgur.RefreshToken = "refresh"
	if err := cfg.RequireRefreshCredentials(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRedirectURL(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.RedirectURL(); got != "http://127.0.0.1:8085/callback" {
		t.Errorf("unexpected redirect URL: %s", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := validConfig()
	cfg.Imgur.RefreshToken = "refresh"
	cfg.Imgur.Username = "alice"

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

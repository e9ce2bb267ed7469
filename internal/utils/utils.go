package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const configTemplate = `# Optional log level, default "info". "debug" logs every request sent to Imgur.
loglevel = "info"

# Optional HTTP timeout in secs, default 10.
timeout = 10

[imgur]
# Required. Client ID of your application, see https://api.imgur.com/oauth2/addclient
client_id = "{{CLIENT_ID}}"

# Required for 'goimgur login' and 'goimgur refresh-token'
client_secret = "{{CLIENT_SECRET}}"

# Filled in by 'goimgur login'
refresh_token = ""
access_token = ""
username = ""

[login]
# Optional address of the local OAuth callback server, default 127.0.0.1:8085.
# The callback URL registered for your application must be http://<bind_address>:<port>/callback
bind_address = "127.0.0.1"
port = 8085
`

// GenerateConfig writes a commented configuration file for the given
// application credentials. An existing file is backed up first.
func GenerateConfig(configPath, clientID, clientSecret string) error {
	fmt.Printf("Generating config %s\n", configPath)

	// Replace placeholders with the application credentials
	config := strings.NewReplacer(
		"{{CLIENT_ID}}", clientID,
		"{{CLIENT_SECRET}}", clientSecret,
	).Replace(configTemplate)

	// Check if config file already exists and back it up
	if _, err := os.Stat(configPath); err == nil {
		backupPath := configPath + ".bak"
		fmt.Printf("Backing up config %s\n", configPath)
		if err := os.Rename(configPath, backupPath); err != nil {
			return fmt.Errorf("failed to backup config: %w", err)
		}
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write config file
	fmt.Printf("Writing %s\n", configPath)
	if err := os.WriteFile(configPath, []byte(config), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// PrintJSON writes v as indented JSON followed by a newline.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ParseSettings turns "key=value" pairs into a settings map.
func ParseSettings(pairs []string) (map[string]string, error) {
	settings := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid setting %q, expected key=value", pair)
		}
		settings[key] = value
	}
	return settings, nil
}

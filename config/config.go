// Package config resolves the settings for a wpmcp run.
//
// Values are layered: built-in defaults, then environment variables (a .env
// file in the working directory is loaded into the environment by main), then
// command-line flags. A later layer wins for every non-empty field.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// PlaceholderURL is the documented stand-in for the WordPress site URL.
	PlaceholderURL = "https://yoursite.com"
	// PlaceholderKey is the documented stand-in for the connector API key.
	PlaceholderKey = "wpllm_your_api_key_here"
)

// Settings holds everything a run needs.
//
// Struct tags:
//   - env: environment variable read by caarlos0/env.
type Settings struct {
	// URL is the WordPress site base URL, e.g. https://example.com.
	// Env: WORDPRESS_URL
	URL string `env:"WORDPRESS_URL"`

	// APIKey is the key generated in WordPress under Settings > LLM Connector.
	// It is sent verbatim in the X-WP-LLM-API-Key header.
	// Env: WP_LLM_API_KEY
	APIKey string `env:"WP_LLM_API_KEY"`

	// Out is the MCP configuration file to merge into.
	// Env: MCP_CONFIG_PATH
	Out string `env:"MCP_CONFIG_PATH"`
}

// DefaultOutPath returns ~/.claude/mcp_config.json.
func DefaultOutPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude", "mcp_config.json"), nil
}

// Load builds the final settings from defaults, the environment and flags.
// flags carries values given on the command line; empty fields are treated
// as unset.
func Load(flags Settings) (*Settings, error) {
	return newBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		build()
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

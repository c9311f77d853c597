package mcp

import (
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"wpmcp/tools"
)

const (
	// ServerName is the entry under mcpServers that a setup run owns.
	ServerName = "wordpress"

	// Namespace is the REST namespace registered by the WordPress plugin.
	Namespace = "wp-llm-connector/v1"

	// HeaderAPIKey carries the connector API key on every request.
	HeaderAPIKey = "X-WP-LLM-API-Key"

	serverDescription = "WordPress site diagnostics and administration"
)

// ServerDescriptor is the fragment written under mcpServers.<name>.
// Field order is the order keys appear in the file.
type ServerDescriptor struct {
	URL         string            `json:"url"`
	Transport   string            `json:"transport"`
	Headers     map[string]string `json:"headers"`
	Description string            `json:"description"`
	Endpoints   EndpointTable     `json:"endpoints"`
	Tools       []*gomcp.Tool     `json:"tools"`
}

// Endpoint describes one REST route relative to the descriptor URL.
type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// BaseURL joins the site URL and the connector namespace. Trailing slashes on
// siteURL are dropped; nothing else about the URL is checked.
func BaseURL(siteURL string) string {
	return strings.TrimRight(siteURL, "/") + "/wp-json/" + Namespace + "/"
}

// BuildFragment returns the server descriptor for a WordPress site. The
// credential is used verbatim as the API key header value.
func BuildFragment(siteURL, credential string) *ServerDescriptor {
	return &ServerDescriptor{
		URL:       BaseURL(siteURL),
		Transport: "http",
		Headers: map[string]string{
			HeaderAPIKey: credential,
		},
		Description: serverDescription,
		Endpoints:   Endpoints(),
		Tools:       tools.Definitions(),
	}
}

package tools

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	Diagnose         = "wordpress_diagnose"
	SecurityAudit    = "wordpress_security_audit"
	PerformanceCheck = "wordpress_performance_check"
)

// Definitions returns the tools advertised for the WordPress connector, in
// a fixed order. A fresh slice is built on every call so callers may modify it.
func Definitions() []*gomcp.Tool {
	return []*gomcp.Tool{
		{
			Name:        Diagnose,
			Description: "Run comprehensive WordPress diagnostics",
			InputSchema: object(map[string]*jsonschema.Schema{
				"include_plugins": boolFlag("Include plugin analysis"),
				"include_themes":  boolFlag("Include theme analysis"),
				"include_system":  boolFlag("Include system status"),
			}),
		},
		{
			Name:        SecurityAudit,
			Description: "Perform security audit of WordPress installation",
			InputSchema: object(map[string]*jsonschema.Schema{
				"check_outdated": boolFlag("Check for outdated plugins/themes"),
			}),
		},
		{
			Name:        PerformanceCheck,
			Description: "Analyze WordPress performance metrics",
			InputSchema: object(map[string]*jsonschema.Schema{}),
		},
	}
}

func object(props map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
	}
}

// boolFlag is an optional boolean argument that defaults to true.
func boolFlag(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "boolean",
		Description: description,
		Default:     json.RawMessage("true"),
	}
}

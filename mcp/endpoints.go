package mcp

import "net/http"

// NamedEndpoint is one row of an EndpointTable.
type NamedEndpoint struct {
	Name string
	Endpoint
}

// EndpointTable is written as a JSON object keyed by name, in table order.
type EndpointTable []NamedEndpoint

// Get returns the endpoint called name.
func (t EndpointTable) Get(name string) (Endpoint, bool) {
	for _, e := range t {
		if e.Name == name {
			return e.Endpoint, true
		}
	}
	return Endpoint{}, false
}

func (t EndpointTable) MarshalJSON() ([]byte, error) {
	obj := newObject()
	for _, e := range t {
		raw, err := encode(e.Endpoint, false)
		if err != nil {
			return nil, err
		}
		obj.Set(e.Name, raw)
	}
	return obj.MarshalJSON()
}

// Endpoints returns the REST routes exposed by the connector plugin.
func Endpoints() EndpointTable {
	return EndpointTable{
		get("health", "/health", "Check connector health status"),
		get("site_info", "/site-info", "Get WordPress site information"),
		get("plugins", "/plugins", "List all installed plugins"),
		get("themes", "/themes", "List all installed themes"),
		get("system_status", "/system-status", "Get comprehensive system diagnostics"),
		get("user_count", "/user-count", "Get user statistics by role"),
		get("post_stats", "/post-stats", "Get content statistics"),
	}
}

func get(name, path, description string) NamedEndpoint {
	return NamedEndpoint{
		Name:     name,
		Endpoint: Endpoint{Path: path, Method: http.MethodGet, Description: description},
	}
}

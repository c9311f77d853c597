package tools

import (
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tmc/langchaingo/llms"
)

// Functions converts MCP tool definitions into LLM function-calling
// definitions, for clients that take tools directly instead of over MCP.
func Functions(defs []*gomcp.Tool) []llms.Tool {
	out := make([]llms.Tool, 0, len(defs))
	for _, t := range defs {
		out = append(out, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		})
	}
	return out
}
